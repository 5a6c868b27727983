package domain

// Principal is the authenticated actor behind a request.
type Principal struct {
	ID   int
	Role Role
}
