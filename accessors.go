package schemaflag

// GetBool returns the value of the bool flag with the given key.
func (s *Schema) GetBool(key rune) (bool, error) {
	return get[bool](s, key, KindBool)
}

// GetInt returns the value of the integer flag with the given key.
func (s *Schema) GetInt(key rune) (int32, error) {
	return get[int32](s, key, KindInt)
}

// GetString returns the value of the text flag with the given key.
func (s *Schema) GetString(key rune) (string, error) {
	return get[string](s, key, KindString)
}

// this cannot be a Schema method due to the type parameters usage
func get[T bool | int32 | string](s *Schema, key rune, want Kind) (T, error) {
	var zero T
	fs, ex := s.slots[key]
	if !ex {
		return zero, &Error{Kind: UnknownArgument, Key: key}
	}
	typed, ok := fs.(*slot[T])
	if !ok {
		return zero, &Error{Kind: TypeMismatch, Key: key, Have: fs.Kind(), Want: want}
	}
	return typed.value, nil
}
