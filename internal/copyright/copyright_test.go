package copyright

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line      string
		years     []Span
		statement string
	}{
		// 1. SPDX tag forms, with and without decorations.
		{"SPDX-FileCopyrightText: 2020 Jane Doe", []Span{{From: "2020"}}, "Jane Doe"},
		{"SPDX-FileCopyrightText: © 2020 Jane Doe", []Span{{From: "2020"}}, "Jane Doe"},
		{"SPDX-FileCopyrightText: Copyright (C) 2020 Jane Doe", []Span{{From: "2020"}}, "Jane Doe"},
		{"SPDX-SnippetCopyrightText: 2020 Jane Doe", []Span{{From: "2020"}}, "Jane Doe"},
		// 2. Bare forms.
		{"Copyright 2019 John Doe", []Span{{From: "2019"}}, "John Doe"},
		{"Copyright (c) 2019 John Doe", []Span{{From: "2019"}}, "John Doe"},
		{"© 2019 John Doe", []Span{{From: "2019"}}, "John Doe"},
		// 3. Prefix-less manifest values.
		{"2018 Jane Doe", []Span{{From: "2018"}}, "Jane Doe"},
		{"Jane Doe <jane@example.com>", nil, "Jane Doe <jane@example.com>"},
		// 4. Ranges with arbitrary spacing normalize away the spaces.
		{"2016-2018 Jane Doe", []Span{{From: "2016", To: "2018"}}, "Jane Doe"},
		{"2016 - 2018 Jane Doe", []Span{{From: "2016", To: "2018"}}, "Jane Doe"},
		// 5. Comma lists of year tokens.
		{"2016, 2018-2020, 2022 Jane Doe", []Span{{From: "2016"}, {From: "2018", To: "2020"}, {From: "2022"}}, "Jane Doe"},
		// 6. A malformed token ends year consumption but never drops
		// the holder.
		{"2016, 20x8 Jane Doe", []Span{{From: "2016"}}, "20x8 Jane Doe"},
		{"2016Jane Doe", nil, "2016Jane Doe"},
		// 7. No year at all.
		{"SPDX-FileCopyrightText: Jane Doe", nil, "Jane Doe"},
	}
	for _, tc := range cases {
		n := Parse(tc.line)
		if !reflect.DeepEqual(n.Years, tc.years) {
			t.Errorf("Parse(%q).Years = %v, want %v", tc.line, n.Years, tc.years)
		}
		if n.Statement != tc.statement {
			t.Errorf("Parse(%q).Statement = %q, want %q", tc.line, n.Statement, tc.statement)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"SPDX-FileCopyrightText: 2020 Jane Doe", "2020 Jane Doe"},
		{"Copyright 2019 John Doe", "2019 John Doe"},
		{"© 2017 - 2019 ACME Corp", "2017-2019 ACME Corp"},
		{"2018 Jane Doe", "2018 Jane Doe"},
		{"Jane Doe", "Jane Doe"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.line); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestMergeCollapsesIdenticalHolders(t *testing.T) {
	// 1. Same holder, distinct years: one range, no spaces around the
	// hyphen.
	got := Merge([]string{"2016 Jane Doe", "2018 Jane Doe"})
	want := []string{"2016-2018 Jane Doe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}

	// 2. Distinct holders stay separate.
	got = Merge([]string{"2018 Jane Doe", "2019 John Doe"})
	want = []string{"2018 Jane Doe", "2019 John Doe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}

	// 3. Ranges extend the envelope.
	got = Merge([]string{"2014-2016 Jane Doe", "2018 Jane Doe"})
	want = []string{"2014-2018 Jane Doe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}

	// 4. Identical single years collapse to one year.
	got = Merge([]string{"2020 Jane Doe", "2020 Jane Doe"})
	want = []string{"2020 Jane Doe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}

	// 5. Prefixed input merges with bare input; output is bare.
	got = Merge([]string{"SPDX-FileCopyrightText: 2016 Jane Doe", "2018 Jane Doe"})
	want = []string{"2016-2018 Jane Doe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}

	// 6. Yearless notices pass through.
	got = Merge([]string{"Jane Doe"})
	want = []string{"Jane Doe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}
