package obfuscator

// consoleMembers rewrites member accesses on console, and accesses of a
// console property on other objects, into bracket form:
//
//	window.console.log(x)  =>  window['console']['log'](x)
//
// The compiler only drops calls on the bare console global; once the names
// are string literals the string array encodes them like any other string.
func consoleMembers(src string) (string, error) {
	ts, err := tokenize(src)
	if err != nil {
		return "", err
	}
	w, err := newWalker(ts)
	if err != nil {
		return "", err
	}
	list := ts.list
	for i, t := range list {
		if t.kind != kindIdent || t.text != "console" {
			continue
		}
		if p := w.prevSigIndex(i); p >= 0 {
			switch list[p].text {
			case ".":
				list[p].text = ""
				list[i].text = "['console']"
			case "?.":
				list[i].text = "['console']"
			}
		}
		dot := w.nextSigIndex(i)
		if dot < 0 || (list[dot].text != "." && list[dot].text != "?.") {
			continue
		}
		name := w.nextSigIndex(dot)
		if name < 0 || list[name].kind != kindIdent || list[name].text[0] == '#' {
			continue
		}
		if list[dot].text == "." {
			list[dot].text = ""
		}
		list[name].text = "[" + quote(list[name].text, true) + "]"
	}
	return w.String(), nil
}
