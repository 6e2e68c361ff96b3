package hashindex

import "errors"

// ErrCapacityExceeded is returned by Insert when accepting the element
// would grow the table past its configured maximum capacity.
var ErrCapacityExceeded = errors.New("hash index capacity exceeded")
