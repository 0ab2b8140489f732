package animation

type cacheKey struct {
	object   Object
	property Property
}

// propertyCache holds the last values of retired animations. Every entry is
// erased by the first read that returns it.
type propertyCache map[cacheKey]Value

func (c propertyCache) put(object Object, property Property, v Value) {
	c[cacheKey{object, property}] = v
}

func (c propertyCache) take(object Object, property Property) (Value, bool) {
	key := cacheKey{object, property}
	v, ok := c[key]
	if ok {
		delete(c, key)
	}
	return v, ok
}

func (c propertyCache) hasObject(object Object) bool {
	for key := range c {
		if key.object == object {
			return true
		}
	}
	return false
}
