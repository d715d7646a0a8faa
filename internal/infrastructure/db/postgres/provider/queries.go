package provider

const (
	providerColumns = `
		id, user_id, user_email, nome, cpf, data_nascimento, telefone, nome_empresa, cnpj, tipo_empresa,
		categoria_id, categoria_nome, descricao, servicos, valor_hora, preco_base, tempo_medio_atendimento,
		dias_disponiveis, horarios_disponiveis, rua, numero, complemento, bairro, cidade, estado, cep,
		raio_atendimento, foto, foto_facial, foto_documento, logo_empresa, fotos_trabalhos, avaliacao,
		destaque, status_aprovacao, ativo, latitude, longitude, created_date, updated_date`

	SelectOwnershipCandidates = `SELECT ` + providerColumns + `
		FROM prestadores
		WHERE user_id = $1 OR LOWER(TRIM(user_email)) = $2
		ORDER BY CASE WHEN user_id = $1 THEN 0 ELSE 1 END, created_date ASC, id ASC`
	SelectProviderByID = `SELECT ` + providerColumns + `
		FROM prestadores
		WHERE id = $1`
	SelectProviders = `SELECT ` + providerColumns + `
		FROM prestadores`
	InsertProvider = `
		INSERT INTO prestadores (
			user_id, user_email, nome, cpf, data_nascimento, telefone, nome_empresa, cnpj, tipo_empresa,
			categoria_id, categoria_nome, descricao, servicos, valor_hora, preco_base, tempo_medio_atendimento,
			dias_disponiveis, horarios_disponiveis, rua, numero, complemento, bairro, cidade, estado, cep,
			raio_atendimento, foto, foto_facial, foto_documento, logo_empresa, fotos_trabalhos, avaliacao,
			destaque, status_aprovacao, ativo, latitude, longitude
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37
		)
		RETURNING ` + providerColumns
	UpdateProviderByID = `
		UPDATE prestadores
		SET user_id = $1,
		    user_email = $2,
		    nome = $3,
		    cpf = $4,
		    data_nascimento = $5,
		    telefone = $6,
		    nome_empresa = $7,
		    cnpj = $8,
		    tipo_empresa = $9,
		    categoria_id = $10,
		    categoria_nome = $11,
		    descricao = $12,
		    servicos = $13,
		    valor_hora = $14,
		    preco_base = $15,
		    tempo_medio_atendimento = $16,
		    dias_disponiveis = $17,
		    horarios_disponiveis = $18,
		    rua = $19,
		    numero = $20,
		    complemento = $21,
		    bairro = $22,
		    cidade = $23,
		    estado = $24,
		    cep = $25,
		    raio_atendimento = $26,
		    foto = $27,
		    foto_facial = $28,
		    foto_documento = $29,
		    logo_empresa = $30,
		    fotos_trabalhos = $31,
		    avaliacao = $32,
		    destaque = $33,
		    status_aprovacao = $34,
		    ativo = $35,
		    latitude = $36,
		    longitude = $37,
		    updated_date = now()
		WHERE id = $38
		RETURNING ` + providerColumns

	UpdateOwnership = `
		UPDATE prestadores
		SET user_id = $1, user_email = $2, updated_date = now()
		WHERE id = $3`
	ReassignOwnerEmail = `
		UPDATE prestadores
		SET user_email = $1, updated_date = now()
		WHERE user_id = $2 OR LOWER(TRIM(user_email)) = $3`
	SetActiveByOwner = `
		UPDATE prestadores
		SET ativo = $1, updated_date = now()
		WHERE user_id = $2 OR LOWER(TRIM(user_email)) = $3`
	RefreshCategoryName = `
		UPDATE prestadores
		SET categoria_nome = $1, updated_date = now()
		WHERE categoria_id = $2`
	CountByCategory = `SELECT COUNT(*) FROM prestadores WHERE categoria_id = $1`
	DeleteByOwner   = `DELETE FROM prestadores WHERE user_id = $1`
)
