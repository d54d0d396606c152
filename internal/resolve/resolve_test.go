package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reuselint/reuselint/internal/record"
)

func header(copyrights, expressions []string) record.Evidence {
	ev := record.NewEvidence(record.SourceFileHeader, "hello_world.txt")
	ev.Copyrights.Add(copyrights...)
	ev.Expressions.Add(expressions...)
	return ev
}

func annotation(depth int, prec record.Precedence, copyrights, expressions []string) record.Evidence {
	ev := record.NewEvidence(record.SourceReuseTOML, "REUSE.toml")
	ev.Precedence = prec
	ev.Depth = depth
	ev.Copyrights.Add(copyrights...)
	ev.Expressions.Add(expressions...)
	return ev
}

func legacy(copyrights []string, expression string) record.Evidence {
	ev := record.NewEvidence(record.SourceDep5, ".reuse/dep5")
	ev.Precedence = record.PrecedenceAggregate
	ev.Copyrights.Add(copyrights...)
	ev.Expressions.Add(expression)
	return ev
}

func TestResolveNoEvidence(t *testing.T) {
	info := Resolve("empty.txt", nil)
	assert.Equal(t, "empty.txt", info.Path)
	assert.False(t, info.HasCopyright())
	assert.False(t, info.HasLicensing())
	assert.NotNil(t, info.Copyrights)
	assert.NotNil(t, info.Expressions)
}

func TestResolveHeaderOnly(t *testing.T) {
	info := Resolve("a.py", []record.Evidence{
		header([]string{"2020 Jane Doe"}, []string{"MIT"}),
	})
	assert.Equal(t, []string{"2020 Jane Doe"}, info.Copyrights.Sorted())
	assert.Equal(t, []string{"MIT"}, info.Expressions.Sorted())
}

func TestResolveAggregateUnionsWithHeader(t *testing.T) {
	info := Resolve("hello_world.txt", []record.Evidence{
		annotation(0, record.PrecedenceAggregate, []string{"2018 Jane Doe"}, nil),
		header([]string{"2019 John Doe"}, nil),
	})
	assert.Equal(t, []string{"2018 Jane Doe", "2019 John Doe"}, info.Copyrights.Sorted())
}

func TestResolveUnionOrderIndependent(t *testing.T) {
	records := []record.Evidence{
		header([]string{"2019 John Doe"}, []string{"MIT"}),
		annotation(0, record.PrecedenceAggregate, []string{"2018 Jane Doe"}, []string{"0BSD"}),
		legacy([]string{"2017 ACME Corp"}, "CC0-1.0"),
	}
	// The legacy manifest is discarded whenever an annotation matches, in
	// every permutation alike.
	want := Resolve("f.txt", records)
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		shuffled := []record.Evidence{records[p[0]], records[p[1]], records[p[2]]}
		got := Resolve("f.txt", shuffled)
		assert.True(t, want.Copyrights.Equal(got.Copyrights), "order %v", p)
		assert.True(t, want.Expressions.Equal(got.Expressions), "order %v", p)
	}
	assert.Equal(t, []string{"2018 Jane Doe", "2019 John Doe"}, want.Copyrights.Sorted())
}

func TestResolveOverrideReplacesEverything(t *testing.T) {
	info := Resolve("vendored.c", []record.Evidence{
		header([]string{"2015 Upstream Author"}, []string{"GPL-2.0-only"}),
		annotation(1, record.PrecedenceOverride, []string{"2022 Jane Doe"}, []string{"MIT"}),
		annotation(0, record.PrecedenceAggregate, []string{"2010 Someone Else"}, nil),
		legacy([]string{"2009 Ancient Holder"}, "0BSD"),
	})
	assert.Equal(t, []string{"2022 Jane Doe"}, info.Copyrights.Sorted())
	assert.Equal(t, []string{"MIT"}, info.Expressions.Sorted())
}

func TestResolveDeepestOverrideWins(t *testing.T) {
	info := Resolve("vendored.c", []record.Evidence{
		annotation(0, record.PrecedenceOverride, []string{"2020 Shallow"}, []string{"MIT"}),
		annotation(2, record.PrecedenceOverride, []string{"2021 Deep"}, []string{"0BSD"}),
	})
	assert.Equal(t, []string{"2021 Deep"}, info.Copyrights.Sorted())
	assert.Equal(t, []string{"0BSD"}, info.Expressions.Sorted())
}

func TestResolveDeeperEntryDisarmsShallowerOverride(t *testing.T) {
	// An override entry only replaces other sources when it is the most
	// specific manifest match. Outranked, it contributes like any other
	// record.
	info := Resolve("f.txt", []record.Evidence{
		annotation(2, record.PrecedenceAggregate, []string{"2021 Deep"}, nil),
		annotation(1, record.PrecedenceOverride, []string{"2020 Shallow"}, []string{"MIT"}),
		header([]string{"2019 John Doe"}, nil),
	})
	assert.Equal(t, []string{"2019 John Doe", "2020 Shallow", "2021 Deep"}, info.Copyrights.Sorted())
	assert.Equal(t, []string{"MIT"}, info.Expressions.Sorted())
}

func TestResolveClosestDropsShallowerManifests(t *testing.T) {
	info := Resolve("sub/f.txt", []record.Evidence{
		annotation(1, record.PrecedenceClosest, nil, []string{"MIT"}),
		annotation(0, record.PrecedenceAggregate, []string{"2018 Jane Doe"}, []string{"0BSD"}),
		header([]string{"2019 John Doe"}, nil),
	})
	// The shallower manifest is gone entirely; the file's own header still
	// merges in.
	assert.Equal(t, []string{"2019 John Doe"}, info.Copyrights.Sorted())
	assert.Equal(t, []string{"MIT"}, info.Expressions.Sorted())
}

func TestResolveAggregateChainsPastDepth(t *testing.T) {
	info := Resolve("a/b/f.txt", []record.Evidence{
		annotation(2, record.PrecedenceAggregate, []string{"2022 Deep"}, nil),
		annotation(1, record.PrecedenceClosest, []string{"2021 Middle"}, nil),
		annotation(0, record.PrecedenceAggregate, []string{"2020 Root"}, nil),
	})
	// Aggregate merges downward until a closest entry cuts the chain.
	assert.Equal(t, []string{"2021 Middle", "2022 Deep"}, info.Copyrights.Sorted())
}

func TestResolveLegacyManifestFallback(t *testing.T) {
	// 1. With no annotation entry, the legacy manifest merges with the
	// file's own header.
	info := Resolve("f.txt", []record.Evidence{
		legacy([]string{"2017 ACME Corp"}, "CC0-1.0"),
		header([]string{"2019 John Doe"}, []string{"MIT"}),
	})
	assert.Equal(t, []string{"2017 ACME Corp", "2019 John Doe"}, info.Copyrights.Sorted())
	assert.Equal(t, []string{"CC0-1.0", "MIT"}, info.Expressions.Sorted())

	// 2. Any matching annotation entry supersedes it, even an unrelated
	// aggregate one.
	info = Resolve("f.txt", []record.Evidence{
		legacy([]string{"2017 ACME Corp"}, "CC0-1.0"),
		annotation(0, record.PrecedenceAggregate, []string{"2018 Jane Doe"}, nil),
		header([]string{"2019 John Doe"}, []string{"MIT"}),
	})
	assert.Equal(t, []string{"2018 Jane Doe", "2019 John Doe"}, info.Copyrights.Sorted())
	assert.Equal(t, []string{"MIT"}, info.Expressions.Sorted())
}

func TestResolveIdempotent(t *testing.T) {
	records := []record.Evidence{
		header([]string{"2019 John Doe"}, []string{"MIT"}),
		annotation(0, record.PrecedenceAggregate, []string{"2018 Jane Doe"}, nil),
	}
	first := Resolve("f.txt", records)
	second := Resolve("f.txt", records)
	assert.Equal(t, first, second)
}

func TestResolveSkipsEmptyRecords(t *testing.T) {
	// An annotation that declares no fields carries no evidence; it must
	// not cut the chain for shallower manifests.
	empty := record.NewEvidence(record.SourceReuseTOML, "sub/REUSE.toml")
	empty.Depth = 1

	info := Resolve("sub/f.txt", []record.Evidence{
		empty,
		annotation(0, record.PrecedenceAggregate, []string{"2018 Jane Doe"}, nil),
	})
	assert.Equal(t, []string{"2018 Jane Doe"}, info.Copyrights.Sorted())
}

func TestResolveLeavesInputsUntouched(t *testing.T) {
	h := header([]string{"2019 John Doe"}, []string{"MIT"})
	a := annotation(0, record.PrecedenceAggregate, []string{"2018 Jane Doe"}, nil)

	info := Resolve("f.txt", []record.Evidence{h, a})
	require.Equal(t, []string{"2018 Jane Doe", "2019 John Doe"}, info.Copyrights.Sorted())

	assert.Equal(t, []string{"2019 John Doe"}, h.Copyrights.Sorted())
	assert.Equal(t, []string{"2018 Jane Doe"}, a.Copyrights.Sorted())
	assert.True(t, a.Expressions.Empty())
}
