package x

// Validater is implemented by anything that can check its own state.
// This is used in at least Msg and Model to make sure we only handle
// and store valid data.
//
// The name is unusual but consistent: a Validator checks other objects,
// a Validater checks itself.
type Validater interface {
	Validate() error
}
