package guard

// Navigator performs the navigation effect a Decision calls for. The session
// manager and UI shells share one implementation so redirects are observable
// in tests without a rendering environment.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(route string) {
	f(route)
}
