package user

const (
	userColumns = `
		id, full_name, email, password_hash, avatar, tipo, telefone, cpf, cnpj, nome_empresa, ativo,
		data_nascimento, rua, numero, complemento, bairro, cidade, estado, cep, created_date, updated_date`

	SelectUsers = `SELECT ` + userColumns + `
		FROM users
		ORDER BY created_date DESC`
	SelectUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`
	SelectUserByIDForUpdate = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		FOR UPDATE`
	SelectUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`
	SelectEmailTakenByOther = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`
	InsertUser              = `
		INSERT INTO users (
			full_name, email, avatar, tipo, telefone, cpf, cnpj, nome_empresa, ativo,
			data_nascimento, rua, numero, complemento, bairro, cidade, estado, cep, password_hash
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + userColumns
	UpdateUserByID = `
		UPDATE users
		SET full_name = $1,
		    email = $2,
		    avatar = $3,
		    tipo = $4,
		    telefone = $5,
		    cpf = $6,
		    cnpj = $7,
		    nome_empresa = $8,
		    ativo = $9,
		    data_nascimento = $10,
		    rua = $11,
		    numero = $12,
		    complemento = $13,
		    bairro = $14,
		    cidade = $15,
		    estado = $16,
		    cep = $17,
		    updated_date = now()
		WHERE id = $18
		RETURNING ` + userColumns
	CountAdmins    = `SELECT COUNT(*) FROM users WHERE tipo = 'admin'`
	DeleteUserByID = `DELETE FROM users WHERE id = $1`
)
