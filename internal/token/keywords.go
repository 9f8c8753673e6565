package token

var keywords = map[string]Kind{
	"autoidx":   KwAutoidx,
	"module":    KwModule,
	"end":       KwEnd,
	"attribute": KwAttribute,
	"parameter": KwParameter,
	"wire":      KwWire,
	"memory":    KwMemory,
	"cell":      KwCell,
	"connect":   KwConnect,
	"process":   KwProcess,
	"assign":    KwAssign,
	"switch":    KwSwitch,
	"case":      KwCase,
	"sync":      KwSync,
	"update":    KwUpdate,
	"memwr":     KwMemwr,
	"width":     KwWidth,
	"offset":    KwOffset,
	"size":      KwSize,
	"input":     KwInput,
	"output":    KwOutput,
	"inout":     KwInout,
	"upto":      KwUpto,
	"signed":    KwSigned,
	"real":      KwReal,
	"low":       KwLow,
	"high":      KwHigh,
	"posedge":   KwPosedge,
	"negedge":   KwNegedge,
	"edge":      KwEdge,
	"always":    KwAlways,
	"init":      KwInit,
	"global":    KwGlobal,
}

var keywordText = func() map[Kind]string {
	out := make(map[Kind]string, len(keywords))
	for s, k := range keywords {
		out[k] = s
	}
	return out
}()

// LookupKeyword returns the keyword kind for word.
// Keywords are case-sensitive: "Module" is a plain Word.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}
