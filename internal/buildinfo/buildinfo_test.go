// seehuhn.de/go/checkprint - print bank checks as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		info *debug.BuildInfo
		want string
	}{
		{
			info: &debug.BuildInfo{Main: debug.Module{Version: "v0.2.0"}},
			want: "v0.2.0",
		},
		{
			info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: "(devel)",
		},
		{
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "1a2b3c4d5e6f"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: "1a2b3c4d+dirty",
		},
		{
			info: &debug.BuildInfo{
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			},
			want: "abc",
		},
	}
	for i, c := range cases {
		if got := describe(c.info); got != c.want {
			t.Errorf("%d: got %q, want %q", i, got, c.want)
		}
	}
}
