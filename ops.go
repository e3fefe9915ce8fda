// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

// TwoArgOperations is implemented by posit arithmetic over values of type T.
// This package does not provide an implementation.
type TwoArgOperations[T any] interface {
	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	Div(x, y T) T
}

// UnaryOperations is implemented by posit arithmetic over values of type T.
type UnaryOperations[T any] interface {
	Recip(x T) T
	Sqrt(x T) T
	Square(x T) T
	Log2(x T) T
	Pow2(x T) T
}

// Operations is the full arithmetic of a posit implementation.
type Operations[T any] interface {
	TwoArgOperations[T]
	UnaryOperations[T]
}
