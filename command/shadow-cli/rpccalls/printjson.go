// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

// trace a request or reply when verbose
func (client *Client) printJson(title string, message interface{}) error {
	if !client.verbose {
		return nil
	}

	if "" != title {
		fmt.Fprintf(client.handle, "%s:\n", title)
	}

	encoder := json.NewEncoder(client.handle)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}
