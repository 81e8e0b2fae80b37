package checkout

import "errors"

var (
	// ErrUnauthenticated means no identity was attached to the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrEmptyCart means the user has nothing to check out.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInsufficientStock means a conditional stock decrement matched no
	// row, i.e. another checkout got there first or the quantity was too
	// large. The surrounding transaction is rolled back.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrWriteFailed wraps a rejected insert/update/delete.
	ErrWriteFailed = errors.New("write failed")
)
