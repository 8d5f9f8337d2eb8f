package assets

// FragmentLoader defines the contract for loading injectable fragments.
type FragmentLoader interface {
	// LoadStyle loads a CSS fragment by name (without .css extension).
	// Returns ErrFragmentNotFound if the fragment doesn't exist.
	// Returns ErrInvalidFragmentName if the name is not a bare stem.
	LoadStyle(name string) (string, error)

	// LoadScript loads a JavaScript fragment by name (without .js extension).
	// Returns ErrFragmentNotFound if the fragment doesn't exist.
	// Returns ErrInvalidFragmentName if the name is not a bare stem.
	LoadScript(name string) (string, error)
}
