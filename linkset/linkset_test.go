// SPDX-FileCopyrightText: 2025 M. Shulhan <ms@kilabit.info>
// SPDX-License-Identifier: GPL-3.0-only

package linkset

import (
	"encoding/json"
	"testing"

	"git.sr.ht/~shulhan/pakakeh.go/lib/test"
)

func TestSet_Add(t *testing.T) {
	var set = New()

	test.Assert(t, `first add`, true, set.Add(`http://127.0.0.1/a`))
	test.Assert(t, `second add`, false, set.Add(`http://127.0.0.1/a`))
	test.Assert(t, `other link`, true, set.Add(`http://127.0.0.1/b`))
	test.Assert(t, `Len`, 2, set.Len())
	test.Assert(t, `Has`, true, set.Has(`http://127.0.0.1/b`))
	test.Assert(t, `Has not`, false, set.Has(`http://127.0.0.1/c`))
}

func TestSet_Merge(t *testing.T) {
	var set = New(`http://127.0.0.1/b`, `http://127.0.0.1/a`)
	set.Merge(New(`http://127.0.0.1/a`, `http://127.0.0.1/c`))

	var exp = []string{
		`http://127.0.0.1/a`,
		`http://127.0.0.1/b`,
		`http://127.0.0.1/c`,
	}
	test.Assert(t, `Slice`, exp, set.Slice())
}

func TestSet_JSON(t *testing.T) {
	var set = New(`http://127.0.0.1/z`, `http://127.0.0.1/a`)

	got, err := json.Marshal(set)
	if err != nil {
		t.Fatal(err)
	}
	test.Assert(t, `MarshalJSON`,
		`["http://127.0.0.1/a","http://127.0.0.1/z"]`, string(got))

	var decoded Set
	err = json.Unmarshal(got, &decoded)
	if err != nil {
		t.Fatal(err)
	}
	test.Assert(t, `UnmarshalJSON`, set, decoded)

	got, err = json.Marshal(New())
	if err != nil {
		t.Fatal(err)
	}
	test.Assert(t, `MarshalJSON empty`, `[]`, string(got))
}
