package nd

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the view as nested lists, e.g. [[1, 2, 3], [4, 5, 6]].
// A 0-dimensional view renders as its single element and strings are quoted.
func (v View[T]) String() string {
	var sb strings.Builder
	writeLayout(&sb, v.data, v.layout)
	return sb.String()
}

// String is View.String.
func (m MutView[T]) String() string {
	return m.AsView().String()
}

func writeLayout[T any](sb *strings.Builder, data []T, l layout) {
	if len(l.shape) == 0 {
		writeElem(sb, *elem(data, l.offset))
		return
	}
	sb.WriteByte('[')
	for i := range l.shape[0] {
		if i > 0 {
			sb.WriteString(", ")
		}
		row, _ := l.extract(0, i)
		writeLayout(sb, data, row)
	}
	sb.WriteByte(']')
}

func writeElem(sb *strings.Builder, x any) {
	if s, ok := x.(string); ok {
		sb.WriteString(strconv.Quote(s))
		return
	}
	fmt.Fprint(sb, x)
}
