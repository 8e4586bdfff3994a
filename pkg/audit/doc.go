// Package audit computes the attributes of a word list that decide whether
// passphrases drawn from it are safe and unambiguous.
//
// The entry point is ComputeAttributes, which takes an already cleaned,
// ordered list of words and returns one ListAttributes record:
//
//	attrs, err := audit.ComputeAttributes(words, audit.WithSeed(42))
//	if errors.Is(err, audit.ErrInvalidInput) {
//		// empty list
//	}
//
// Every length, index, prefix, suffix and edit computation works on grapheme
// clusters (user-perceived characters) rather than bytes or code points, so
// "é" and "👍🏽" each count as one character.
//
// Cost:
//
//   - Lexical and information metrics: O(n) in the number of words.
//   - Prefix/suffix, edit distance, shared prefix: O(n²) pairwise scans.
//   - Unique decodability (Sardinas–Patterson): the most expensive check; the
//     number of rounds is bounded only by the number of distinct suffixes of
//     the list's words. Use WithMaxDecodabilityRounds and
//     WithMaxDanglingSuffixes to cap it; exceeding a cap yields
//     ErrResourceExhausted instead of a partial record.
//
// The package performs no I/O and keeps no global state. Pairwise scans can
// be spread over several goroutines with WithParallelism; the results are
// identical to the sequential scan.
package audit
