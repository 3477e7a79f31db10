package build

// Builder is the interface that wraps the Build method.
type Builder interface {
	// Build loads the project tables and the corpus to PostgreSQL.
	Build() error
}
