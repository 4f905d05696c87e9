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

package input

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/checkprint"
)

const staticInfo = `# static check information
Name: Jane Doe
Address Line1: 1 Main Street
'Address Line2' : Springfield, IL 62701

Routing Number: 123456789
Account Number:000111222
Signatures Required: 2
memo: FOR: a:b
`

func TestReadStaticInfo(t *testing.T) {
	info, err := ReadStaticInfo(strings.NewReader(staticInfo), "user_info.txt")
	require.NoError(t, err)

	want := checkprint.StaticInfo{
		"Name":                "Jane Doe",
		"Address Line1":       "1 Main Street",
		"Address Line2":       "Springfield, IL 62701",
		"Routing Number":      "123456789",
		"Account Number":      "000111222",
		"Signatures Required": "2",
		"memo":                "FOR: a:b",
	}
	assert.Equal(t, want, info)
}

func TestReadStaticInfoBadLine(t *testing.T) {
	in := "Name: Jane\n\nno colon here\n"
	_, err := ReadStaticInfo(strings.NewReader(in), "user_info.txt")
	require.Error(t, err)

	var cfgErr *checkprint.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, 3, cfgErr.Line)
	assert.ErrorIs(t, err, checkprint.ErrInvalid)
}

const checkList = "# checks to print\n" +
	"Number\tDate\t\tAmount\tPayee\tMemo\n" +
	"1001\t2026-10-01\t12.50\tJohn Smith\trent\n" +
	"\n" +
	"1002\t2026-10-02\t\t7\tACME Corp.\t.\n" +
	"1003\t.\t100.00\n" +
	"1004\t2026-10-04\t1\tX\tY\textra\r\n"

func TestReadChecks(t *testing.T) {
	list, err := ReadChecks(strings.NewReader(checkList), "check_info.txt")
	require.NoError(t, err)

	assert.Equal(t, []string{"Number", "Date", "Amount", "Payee", "Memo"}, list.Header)
	require.Len(t, list.Records, 4)

	get := func(i int, name string) string {
		v, ok := list.Records[i].Get(name)
		require.True(t, ok, "record %d has no field %q", i, name)
		return v
	}

	assert.Equal(t, "12.50", get(0, "Amount"))
	assert.Equal(t, "rent", get(0, "Memo"))
	assert.Equal(t, "7", get(1, "Amount"))
	assert.Equal(t, "", get(1, "Memo"))
	assert.Equal(t, "", get(2, "Date"))
	assert.Equal(t, "", get(2, "Payee"))
	assert.Equal(t, "Y", get(3, "Memo"))

	for _, rec := range list.Records {
		assert.Equal(t, list.Header, rec.Names())
	}
}

func TestReadChecksEmpty(t *testing.T) {
	list, err := ReadChecks(strings.NewReader("# nothing\n\n"), "check_info.txt")
	require.NoError(t, err)
	assert.Nil(t, list.Header)
	assert.Empty(t, list.Records)
}

func TestUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte("Name: Zoë\nBank Name: Crédit\n"))
	require.NoError(t, err)

	info, err := ReadStaticInfo(bytes.NewReader(data), "user_info.txt")
	require.NoError(t, err)
	assert.Equal(t, "Zoë", info["Name"])
	assert.Equal(t, "Crédit", info["Bank Name"])
}

func TestUTF8BOM(t *testing.T) {
	in := "\ufeffNumber\tAmount\n1\t2\n"
	list, err := ReadChecks(strings.NewReader(in), "check_info.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Number", "Amount"}, list.Header)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	infoName := filepath.Join(dir, "user_info.txt")
	require.NoError(t, os.WriteFile(infoName, []byte(staticInfo), 0o644))
	checksName := filepath.Join(dir, "check_info.txt")
	require.NoError(t, os.WriteFile(checksName, []byte(checkList), 0o644))

	info, err := ReadStaticInfoFile(infoName)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", info["Name"])

	list, err := ReadChecksFile(checksName)
	require.NoError(t, err)
	assert.Len(t, list.Records, 4)

	_, err = ReadChecksFile(filepath.Join(dir, "missing.txt"))
	var cfgErr *checkprint.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
