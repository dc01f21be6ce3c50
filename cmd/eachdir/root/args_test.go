// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package root

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitArgs(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "eachdir ls -la", want: "eachdir -- ls -la"},
		{in: "eachdir -d /tmp -i ls -la", want: "eachdir -d /tmp -i -- ls -la"},
		{in: "eachdir --directory /tmp git -C {} status", want: "eachdir --directory /tmp -- git -C {} status"},
		{in: "eachdir -it 4 echo {}", want: "eachdir -i -t 4 -- echo {}"},
		{in: "eachdir -id /tmp echo {}", want: "eachdir -i -d /tmp -- echo {}"},
		{in: "eachdir -is true", want: "eachdir -i -s -- true"},
		{in: "eachdir -t4 echo", want: "eachdir -t 4 -- echo"},
		{in: "eachdir -it4 echo", want: "eachdir -i -t 4 -- echo"},
		{in: "eachdir -t -1 true", want: "eachdir -t -1 -- true"},
		{in: "eachdir -silent true", want: "eachdir -silent -- true"},
		{in: "eachdir --threads=2 echo", want: "eachdir --threads=2 -- echo"},
		{in: "eachdir -m workdir -c conf.yaml pwd", want: "eachdir -m workdir -c conf.yaml -- pwd"},
		{in: "eachdir --debug --debug true", want: "eachdir --debug --debug -- true"},
		{in: "eachdir -s -e sh -c exit", want: "eachdir -s -e -- sh -c exit"},
		{in: "eachdir -- ls -la", want: "eachdir -- ls -la"},
		{in: "eachdir -i -- ls", want: "eachdir -i -- ls"},
		{in: "eachdir --completion bash", want: "eachdir --completion bash"},
		{in: "eachdir -v", want: "eachdir -v"},
		{in: "eachdir", want: "eachdir"},
		{in: "eachdir -d", want: "eachdir -d"},
	}

	cmd := New()

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			in := strings.Fields(tc.in)
			got := SplitArgs(cmd, in)

			assert.Equal(t, strings.Fields(tc.want), got)
			assert.Equal(t, strings.Fields(tc.in), in, "input is not modified")
		})
	}
}
