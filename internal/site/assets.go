package site

import (
	_ "embed"
)

// Embedded page assets. The stylesheet is either inlined into the page or
// published next to it as StylesheetName; the filter script is always inlined.

//go:embed assets/sheet.css
var defaultStylesheet []byte

//go:embed assets/filter.js
var filterScript []byte

// StylesheetName is the fixed relative name the external-style page links to.
const StylesheetName = "sheet.css"
