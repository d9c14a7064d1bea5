// SPDX-License-Identifier: MIT

package group

import "errors"

var (
	// ErrUnknownVariant indicates a group name or Variant value outside {SU2, SU3}.
	ErrUnknownVariant = errors.New("group: unknown gauge group variant")
)
