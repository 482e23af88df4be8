// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build release

package errors

// Debug is whether to record and log stack traces in [Fatalf].
var Debug = false
