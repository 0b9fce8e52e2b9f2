package javascript

// helperSources supplies the canned JavaScript source for every identifier
// a backend pass may register via registerHelper. emitHelpersAndResources
// (javascript.go) emits each registered id's source exactly once, as a
// property of the trailing `Ci` object, in lexicographic order, so two
// constructs needing the same helper never duplicate it.
var helperSources = map[string]string{
	// sortListPart backs List/Stack.SortPart: native Array has no
	// in-place partial sort, so copy the range out with slice, sort the
	// copy, and write it back.
	"sortListPart": `(list, off, len) => {
    const part = list.slice(off, off + len);
    part.sort((a, b) => a - b);
    for (let i = 0; i < len; i++) list[off + i] = part[i];
  }`,

	// copyArray backs Array/ArrayPtr.CopyTo: typed arrays get the fast
	// TypedArray.set/subarray path, anything else (a plain Array holding
	// class instances) falls back to an index loop.
	"copyArray": `(src, srcOff, dst, dstOff, len) => {
    if (ArrayBuffer.isView(src) && ArrayBuffer.isView(dst)) {
      dst.set(src.subarray(srcOff, srcOff + len), dstOff);
      return;
    }
    for (let i = 0; i < len; i++) dst[dstOff + i] = src[srcOff + i];
  }`,

	// regexEscape backs Regex.Escape: escape every character with
	// special meaning in a JS regex literal, `-` and `/` included since
	// `/` is the literal delimiter and `-` is significant inside the
	// class it's itself building.
	"regexEscape": `(s) => s.replace(/[-\/\\^$*+?.()|[\]{}]/g, "\\$&")`,

	// utf8Encoder/utf8Decoder back UTF8.GetByteCount/GetBytes/GetString:
	// the source's UTF-8 byte-bridge API maps directly onto the Encoding
	// API's shared encoder/decoder instances.
	"utf8Encoder": `new TextEncoder()`,
	"utf8Decoder": `new TextDecoder()`,

	// clearDict backs Dictionary/SortedDictionary.Clear: a plain object
	// has no native clear, so delete every own key in place.
	"clearDict": `(d) => { for (const k of Object.keys(d)) delete d[k]; }`,
}
