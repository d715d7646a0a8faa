package request

const (
	requestColumns = `
		id, cliente_id, cliente_email, cliente_nome, prestador_id, prestador_email, prestador_nome,
		categoria_nome, descricao, preco_proposto, preco_acordado, status, resposta_prestador,
		created_date, updated_date`

	SelectRequests = `SELECT ` + requestColumns + `
		FROM solicitacoes`
	SelectRequestByID = `SELECT ` + requestColumns + `
		FROM solicitacoes
		WHERE id = $1`
	InsertRequest = `
		INSERT INTO solicitacoes (
			cliente_id, cliente_email, cliente_nome, prestador_id, prestador_email, prestador_nome,
			categoria_nome, descricao, preco_proposto, preco_acordado, status, resposta_prestador
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + requestColumns
	UpdateRequestByID = `
		UPDATE solicitacoes
		SET preco_proposto = $1, preco_acordado = $2, status = $3, resposta_prestador = $4, updated_date = now()
		WHERE id = $5
		RETURNING ` + requestColumns

	ReplaceClientEmail = `
		UPDATE solicitacoes
		SET cliente_email = $1, updated_date = now()
		WHERE cliente_id = $2 OR LOWER(TRIM(cliente_email)) = $3`
	ReplaceProviderEmail = `
		UPDATE solicitacoes
		SET prestador_email = $1, updated_date = now()
		WHERE LOWER(TRIM(prestador_email)) = $2`
	ReplaceClientName = `
		UPDATE solicitacoes
		SET cliente_nome = $1, updated_date = now()
		WHERE cliente_id = $2 OR LOWER(TRIM(cliente_email)) = $3`
	ReplaceProviderName = `
		UPDATE solicitacoes
		SET prestador_nome = $1, updated_date = now()
		WHERE LOWER(TRIM(prestador_email)) = $2`
)
