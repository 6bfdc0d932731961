// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avllist/fault"
)

// output a report block as JSON or YAML
func printReport(handle io.Writer, format string, message interface{}) error {

	switch format {
	case "json":
		b, err := json.MarshalIndent(message, "", "  ")
		if nil != err {
			return err
		}
		fmt.Fprintf(handle, "%s\n", b)

	case "yaml":
		encoder := yaml.NewEncoder(handle)
		encoder.SetIndent(2)
		if err := encoder.Encode(message); nil != err {
			return err
		}
		return encoder.Close()

	default:
		return fault.ErrInvalidFormat
	}
	return nil
}
