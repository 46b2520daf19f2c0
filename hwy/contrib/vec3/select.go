package vec3

// Selected describes the backend of Vec.
func Selected() Backend {
	return Vec{}.Backend()
}
