/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pcl

import "errors"

// Errors returned by document operations.
var (
	ErrUnknownFont       = errors.New("unknown font")
	ErrInvalidColor      = errors.New("invalid color")
	ErrUnsupportedImage  = errors.New("unsupported image format")
	ErrUnsupportedSource = errors.New("unsupported source type")
	ErrInvalidPageSize   = errors.New("invalid page size")
)
