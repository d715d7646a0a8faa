package ports

type TokenIssuer interface {
	Issue(userID, email, accountType, role string) (string, error)
}
