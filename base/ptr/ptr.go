package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// Int64 return a pointer to the input value
func Int64(value int64) *int64 {
	return &value
}

