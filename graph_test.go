package wordgraph_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/wordgraph"
)

func createGraph(t *testing.T, words ...string) *wordgraph.Graph {
	t.Helper()
	g := wordgraph.New()
	for _, word := range words {
		require.NoError(t, g.Insert(word))
	}
	return g
}

func TestAccepts(t *testing.T) {
	g := createGraph(t, "cat", "cats", "car")

	assert.True(t, g.Accepts("cat"))
	assert.False(t, g.Accepts("ca"))
	assert.True(t, g.Accepts("cats"))
	assert.True(t, g.Accepts("car"))
	assert.False(t, g.Accepts("dog"))
	assert.False(t, g.Accepts(""))
	assert.False(t, g.Accepts("catsup"))
	assert.Equal(t, 3, g.CountWords())
}

func TestZeroLengthWord(t *testing.T) {
	g := createGraph(t, "")

	assert.True(t, g.Accepts(""))
	assert.True(t, g.IsAccepting(g.Root()))
	assert.Equal(t, 1, g.CountWords())
	assert.Equal(t, []string{""}, slices.Collect(g.Words()))
}

func TestInsertTwice(t *testing.T) {
	g := createGraph(t, "a")
	nodes := g.CountNodes()

	require.NoError(t, g.Insert("a"))

	assert.Equal(t, 1, g.CountWords())
	assert.Equal(t, nodes, g.CountNodes())
	assert.Equal(t, 2, nodes)
	assert.Equal(t, []string{"a"}, slices.Collect(g.Words()))
}

func TestWalk(t *testing.T) {
	g := createGraph(t, "hello", "help")

	hel, ok := g.Walk("hel")
	require.True(t, ok)
	assert.False(t, g.IsAccepting(hel))

	var symbols []rune
	for ch := range g.Transitions(hel) {
		symbols = append(symbols, ch)
	}
	assert.Equal(t, []rune{'l', 'p'}, symbols)

	_, ok = g.Walk("hex")
	assert.False(t, ok)

	root, ok := g.Walk("")
	require.True(t, ok)
	assert.Equal(t, g.Root(), root)
}

func TestParents(t *testing.T) {
	g := createGraph(t, "ab")

	a, _ := g.Walk("a")
	ab, _ := g.Walk("ab")

	assert.Equal(t, map[wordgraph.NodeID][]rune{a: {'b'}}, g.Parents(ab))
	assert.Equal(t, map[wordgraph.NodeID][]rune{g.Root(): {'a'}}, g.Parents(a))
	assert.Empty(t, g.Parents(g.Root()))
	assert.Nil(t, g.Parents(wordgraph.NodeID(1000)))
}

func TestLeaves(t *testing.T) {
	g := createGraph(t, "bat", "bad")

	bat, _ := g.Walk("bat")
	bad, _ := g.Walk("bad")
	assert.Equal(t, wordgraph.NewNodeSet(bat, bad), g.Leaves())

	require.NoError(t, g.Minimize())

	assert.Len(t, g.Leaves(), 1)

	ba, ok := g.Walk("ba")
	require.True(t, ok)
	var symbols []rune
	for ch := range g.Transitions(ba) {
		symbols = append(symbols, ch)
	}
	assert.Equal(t, []rune{'d', 't'}, symbols)

	b, _ := g.Walk("b")
	assert.Equal(t, map[wordgraph.NodeID][]rune{b: {'a'}}, g.Parents(ba))
}

func TestEmptyGraphLeaves(t *testing.T) {
	g := wordgraph.New()
	assert.Equal(t, wordgraph.NewNodeSet(g.Root()), g.Leaves())
}

func TestPrefixes(t *testing.T) {
	g := createGraph(t, "cats", "blip", "catnip", "", "cat")

	results := g.FindAllPrefixesOf("catsup")
	assert.Equal(t, []wordgraph.FindResult{
		{Word: "", Index: 0},
		{Word: "cat", Index: 2},
		{Word: "cats", Index: 4},
	}, results)

	assert.Empty(t, createGraph(t, "dog").FindAllPrefixesOf("cat"))
}

func TestIndexOf(t *testing.T) {
	words := []string{"zebra", "apple", "app", "banana", "band", "bandana", "a"}
	g := createGraph(t, words...)

	sorted := slices.Sorted(slices.Values(words))
	for i, word := range sorted {
		assert.Equal(t, i, g.IndexOf(word), word)
	}
	assert.Equal(t, -1, g.IndexOf("ban"))
	assert.Equal(t, -1, g.IndexOf("zebras"))

	require.NoError(t, g.Minimize())
	for i, word := range sorted {
		assert.Equal(t, i, g.IndexOf(word), word)
	}
}

func TestWordsSorted(t *testing.T) {
	g := createGraph(t, "run", "fun", "fund", "ran", "f")

	want := []string{"f", "fun", "fund", "ran", "run"}
	assert.Equal(t, want, slices.Collect(g.Words()))

	// every call starts over
	assert.Equal(t, want, slices.Collect(g.Words()))

	for word := range g.Words() {
		if word == "fun" {
			break
		}
	}
}

func TestTraverse(t *testing.T) {
	g := createGraph(t, "run", "fun")
	require.NoError(t, g.Minimize())

	t.Run("Identity", func(t *testing.T) {
		seen := wordgraph.NewNodeSet()
		var prefixes []string
		err := g.Traverse(wordgraph.IdentityMode, func(prefix string, id wordgraph.NodeID) bool {
			assert.False(t, seen.Has(id))
			seen.Add(id)
			prefixes = append(prefixes, prefix)
			return true
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"", "f", "fu", "fun"}, prefixes)
		assert.Equal(t, g.CountNodes(), len(seen))
	})

	t.Run("Path", func(t *testing.T) {
		var prefixes []string
		err := g.Traverse(wordgraph.PathMode, func(prefix string, id wordgraph.NodeID) bool {
			prefixes = append(prefixes, prefix)
			return true
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"", "f", "fu", "fun", "r", "ru", "run"}, prefixes)
	})

	t.Run("Stop", func(t *testing.T) {
		calls := 0
		err := g.Traverse(wordgraph.PathMode, func(string, wordgraph.NodeID) bool {
			calls++
			return calls < 2
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := g.Traverse(wordgraph.TraversalMode(42), func(string, wordgraph.NodeID) bool {
			t.Fatal("callback must not run")
			return false
		})
		assert.True(t, wordgraph.Is(err, wordgraph.ErrCodeUnsupportedTraversal))
	})
}

func TestEnumerate(t *testing.T) {
	g := createGraph(t, "blip", "cat", "catnip", "cats")

	type visit struct {
		index int
		word  string
		final bool
	}

	t.Run("Continue", func(t *testing.T) {
		var finals []visit
		g.Enumerate(func(index int, word []rune, final bool) wordgraph.EnumerationResult {
			if final {
				finals = append(finals, visit{index, string(word), final})
			}
			return wordgraph.Continue
		})
		assert.Equal(t, []visit{
			{0, "blip", true},
			{1, "cat", true},
			{2, "catnip", true},
			{3, "cats", true},
		}, finals)
	})

	t.Run("Skip", func(t *testing.T) {
		var words []string
		g.Enumerate(func(index int, word []rune, final bool) wordgraph.EnumerationResult {
			if string(word) == "catn" {
				return wordgraph.Skip
			}
			if final {
				words = append(words, string(word))
			}
			return wordgraph.Continue
		})
		assert.Equal(t, []string{"blip", "cat", "cats"}, words)
	})

	t.Run("Stop", func(t *testing.T) {
		var words []string
		g.Enumerate(func(index int, word []rune, final bool) wordgraph.EnumerationResult {
			if final {
				words = append(words, string(word))
				if len(words) == 2 {
					return wordgraph.Stop
				}
			}
			return wordgraph.Continue
		})
		assert.Equal(t, []string{"blip", "cat"}, words)
	})
}

func TestCounts(t *testing.T) {
	g := createGraph(t, "cat", "cats", "car")

	assert.Equal(t, 6, g.CountNodes())
	assert.Equal(t, 5, g.CountEdges())

	require.NoError(t, g.Minimize())

	assert.Equal(t, 3, g.CountWords())
	assert.Equal(t, 5, g.CountNodes())
	assert.Equal(t, 5, g.CountEdges())
}

func TestRenumberAndDump(t *testing.T) {
	g := createGraph(t, "cat", "cats", "car")
	require.NoError(t, g.Minimize())

	g.Renumber()
	assert.Equal(t, 0, g.Label(g.Root()))
	assert.Equal(t, -1, g.Label(wordgraph.NodeID(1000)))

	assert.Equal(t, "0 c:1\n1 a:2\n2 r:3 t:4\n3*\n4* s:3\n", g.Dump())
}

func TestUnicodeSymbols(t *testing.T) {
	g := createGraph(t, "héllo", "jéllo", "日本", "日本語")
	require.NoError(t, g.Minimize())

	assert.True(t, g.Accepts("héllo"))
	assert.True(t, g.Accepts("日本"))
	assert.False(t, g.Accepts("hello"))
	assert.False(t, g.Accepts("日"))

	h, _ := g.Walk("hé")
	j, _ := g.Walk("jé")
	assert.Equal(t, h, j)
}

func TestInvalidUTF8(t *testing.T) {
	g := createGraph(t, "", "a", "a�")
	nodes := g.CountNodes()

	for _, word := range []string{"\xff", "\xfe", "a\xff", "\xed\xa0\x80"} {
		err := g.Insert(word)
		require.Error(t, err, "%q", word)
		assert.True(t, wordgraph.Is(err, wordgraph.ErrCodeInvalidArgument), "%q", word)
	}
	assert.Equal(t, nodes, g.CountNodes())
	assert.Equal(t, 3, g.CountWords())

	for _, word := range []string{"\xff", "\xfd", "a\xff"} {
		assert.False(t, g.Accepts(word), "%q", word)
		_, ok := g.Walk(word)
		assert.False(t, ok, "%q", word)
		assert.Equal(t, -1, g.IndexOf(word), "%q", word)
	}
	assert.True(t, g.Accepts("a�"))
	assert.Equal(t, 2, g.IndexOf("a�"))

	assert.Equal(t, []wordgraph.FindResult{
		{Word: "", Index: 0},
		{Word: "a", Index: 1},
	}, g.FindAllPrefixesOf("a\xffb"))

	require.NoError(t, g.Minimize())
	assert.False(t, g.Accepts("a\xff"))
	assert.Equal(t, []string{"", "a", "a�"}, slices.Collect(g.Words()))
}

func TestReachable(t *testing.T) {
	g := createGraph(t, "ran", "run", "fun")
	require.NoError(t, g.Minimize())

	seen := wordgraph.NewNodeSet()
	var prefixes []string
	for prefix, id := range g.Reachable() {
		require.False(t, seen.Has(id), "%q", prefix)
		seen.Add(id)
		prefixes = append(prefixes, prefix)

		got, ok := g.Walk(prefix)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
	assert.Equal(t, []string{"", "f", "r", "fu", "fun"}, prefixes)
	assert.Equal(t, g.CountNodes(), len(seen))
}
