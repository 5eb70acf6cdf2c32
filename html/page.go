// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package html

import (
	_ "embed"
	"fmt"
	"strings"

	"znkr.io/sidebyside"
)

var (
	//go:embed page.html
	pageTemplate string

	//go:embed style.css
	style string

	page = strings.Replace(pageTemplate, "/*STYLE*/", style, 1)
)

// Page returns a standalone HTML page to compare two texts.
//
// The page sends the texts over a websocket connection to the endpoint "ws" relative to the page
// URL and expects messages of the following form in return:
//
//	{"command": "displayDiff", "leftHtml": "...", "rightHtml": "...", "additions": 1, "removals": 2}
//	{"command": "cleared"}
//	{"command": "error", "error": "..."}
func Page() string {
	return page
}

// Document returns a static HTML document that shows r with the given title.
//
// The following options are supported: [sidebyside.Context]
func Document(title string, r *sidebyside.Result, opts ...sidebyside.Option) string {
	left, right := Render(r, opts...)
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"UTF-8\">\n<title>")
	escaper.WriteString(&sb, title)
	sb.WriteString("</title>\n<style>\n")
	sb.WriteString(style)
	sb.WriteString("</style>\n</head>\n<body>\n<div class=\"container\">\n")
	sb.WriteString("<div class=\"header\"><h1>")
	escaper.WriteString(&sb, title)
	sb.WriteString("</h1></div>\n")
	fmt.Fprintf(&sb, "<div class=\"stats visible\"><div class=\"stat-removal\">%d removal(s)</div><div class=\"stat-addition\">%d addition(s)</div></div>\n", r.Removals, r.Additions)
	sb.WriteString("<div class=\"diff-section visible\">\n<div class=\"diff-pane\">")
	sb.WriteString(left)
	sb.WriteString("</div>\n<div class=\"diff-pane\">")
	sb.WriteString(right)
	sb.WriteString("</div>\n</div>\n</div>\n</body>\n</html>\n")
	return sb.String()
}
