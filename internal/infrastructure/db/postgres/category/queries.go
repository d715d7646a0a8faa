package category

const (
	categoryColumns = `id, nome, icone, ativo, created_date, updated_date`

	SelectCategories = `SELECT ` + categoryColumns + `
		FROM categorias
		WHERE ($1::boolean IS NULL OR ativo = $1)
		ORDER BY nome ASC`
	SelectCategoryByID = `SELECT ` + categoryColumns + ` FROM categorias WHERE id = $1`
	InsertCategory     = `
		INSERT INTO categorias (nome, icone, ativo)
		VALUES ($1, $2, $3)
		RETURNING ` + categoryColumns
	UpdateCategoryByID = `
		UPDATE categorias
		SET nome = $1, icone = $2, ativo = $3, updated_date = now()
		WHERE id = $4
		RETURNING ` + categoryColumns
	DeleteCategoryByID = `DELETE FROM categorias WHERE id = $1`
)
