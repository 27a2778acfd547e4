package vdom

import "strings"

// RenderText lays a tree out as plain text for terminals. Headings and
// paragraphs get a line each; consecutive buttons share one line as
// "[ caption ]" chips. focus, when non-nil, is drawn as "[>caption<]".
func RenderText(n *VNode, focus *VNode) string {
	var lines []string
	var buttons []string

	flush := func() {
		if len(buttons) > 0 {
			lines = append(lines, strings.Join(buttons, "  "))
			buttons = nil
		}
	}

	var visit func(*VNode)
	visit = func(v *VNode) {
		if v == nil {
			return
		}
		if v.Tag == "button" {
			caption := Text(v)
			if v == focus {
				buttons = append(buttons, "[>"+caption+"<]")
			} else {
				buttons = append(buttons, "[ "+caption+" ]")
			}
			return
		}
		if v.Content != "" {
			flush()
			lines = append(lines, strings.TrimSpace(v.Content))
		}
		for _, c := range v.Children {
			visit(c)
		}
	}

	visit(n)
	flush()
	return strings.Join(lines, "\n")
}
