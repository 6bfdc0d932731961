// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors are
// often returned wrapped with extra detail (fmt.Errorf with %w) so
// compare with errors.Is or the IsErrXXX class functions.
package fault
