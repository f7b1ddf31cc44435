// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package tzconv

import "errors"

// ErrInvalidTimezone is the sentinel wrapped by a failed Load lookup.
var ErrInvalidTimezone = errors.New("invalid timezone")
