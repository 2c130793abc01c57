package obfuscator

import (
	"strings"
)

// consoleMethods are replaced with a no-op by the console guard.
var consoleMethods = []string{"log", "warn", "info", "error", "exception", "table", "trace", "debug"}

// consoleGuard silences console methods at load time. It reaches console
// through the global object so the output holds no console call sites; its
// strings then go through the literal passes like the program's own.
func consoleGuard(n *namer) string {
	methods := make([]string, len(consoleMethods))
	for i, m := range consoleMethods {
		methods[i] = quote(m, true)
	}
	return strings.NewReplacer(
		"$g", n.name(),
		"$c", n.name(),
		"$m", n.name(),
		"$f", n.name(),
		"$i", n.name(),
		"$M", strings.Join(methods, ","),
	).Replace(`(function(){var $g=typeof globalThis!=='undefined'?globalThis:typeof window!=='undefined'?window:typeof global!=='undefined'?global:{};` +
		`var $c=$g['console']=$g['console']||{},$m=[$M],$f=function(){};` +
		`for(var $i=0x0;$i<$m['length'];$i++){$c[$m[$i]]=$f;}})();`)
}

// selfDefending stops the program when its own text has been reformatted: the
// marker function must still print in compact form.
func selfDefending(n *namer) string {
	return strings.NewReplacer("$f", n.name()).Replace(
		`(function(){var $f=function(){return'dev';};if(!/\w+ *\(\) *\{\w+ *['"].+['"];? *\}/.test($f.toString())){for(;;){}}})();`)
}

// debugProtection keeps pausing an attached debugger, once at load and then
// every interval milliseconds.
func debugProtection(interval int, n *namer) string {
	r := strings.NewReplacer("$f", n.name(), "$e", n.name(), "$I", hex(interval))
	loop := ""
	if interval > 0 {
		loop = `if(typeof setInterval==='function'){setInterval($f,$I);}`
	}
	return r.Replace(`(function(){var $f=function(){try{(function(){})['constructor']('debu'+'gger')();}catch($e){}};` + loop + `$f();})();`)
}
