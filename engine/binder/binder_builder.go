package binder

import "github.com/Carmen-Shannon/oxy-gl/engine/gfx"

// BinderOption is a functional option for configuring an AttributeSource.
type BinderOption func(*attributeSource)

// WithDataType sets the component type.
//
// Parameters:
//   - t: the component type
//
// Returns:
//   - BinderOption: functional option to set the data type
func WithDataType(t gfx.DataType) BinderOption {
	return func(s *attributeSource) {
		s.dataType = t
	}
}

// WithOffset sets the attribute start in elements of the data type.
//
// Parameters:
//   - offset: the element offset
//
// Returns:
//   - BinderOption: functional option to set the offset
func WithOffset(offset int) BinderOption {
	return func(s *attributeSource) {
		s.offset = offset
	}
}
