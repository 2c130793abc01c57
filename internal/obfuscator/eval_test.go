package obfuscator

import (
	"fmt"
	"testing"
	"time"

	"github.com/dop251/goja"
)

// run executes src in a fresh runtime and returns the value the program
// stored in the global result.
func run(t *testing.T, src string) string {
	t.Helper()
	vm := goja.New()
	timer := time.AfterFunc(5*time.Second, func() {
		vm.Interrupt("timed out")
	})
	defer timer.Stop()
	if _, err := vm.RunString(src); err != nil {
		t.Fatalf("run: %s\n%s", err, src)
	}
	v := vm.Get("result")
	if v == nil {
		t.Fatalf("result not set:\n%s", src)
	}
	return v.String()
}

var programs = []struct {
	name string
	src  string
	want string
}{
	{
		name: "regexp after for header",
		src: `var R=[];function h(s){for(var i=0;i<2;i++)/b|7/.test(s)?R.push('hit'):R.push('miss')}h('7');
globalThis.result=JSON.stringify(R);`,
		want: `["hit","hit"]`,
	},
	{
		name: "regexp with quote after for header",
		src: `var R=[];function h(s){for(var i=0;i<2;i++)/x"y/g.test(s)?R.push(1):R.push(0)}h('x"y');
globalThis.result=JSON.stringify(R);`,
		want: `[1,1]`,
	},
	{
		name: "closures and switch",
		src: `function counter(){var n=0;return function(){return ++n}}
var c=counter();var out=[];
for(var i=0;i<6;i++){switch(i%3){case 0:out.push('zero:'+c());break;case 1:out.push('one');break;default:out.push(i*1.5)}}
globalThis.result=JSON.stringify(out);`,
		want: `["zero:1","one",3,"zero:2","one",7.5]`,
	},
	{
		name: "labels and exceptions",
		src: `var log=[];
outer:for(var i=0;i<3;i++){for(var j=0;j<3;j++){if(j===2)continue outer;if(i===2)break outer;log.push(i+'-'+j)}}
try{null.x}catch(e){log.push(e instanceof TypeError)}
var k=10;while(k>0){k-=3}log.push(k);
function thrower(){try{throw new Error('boom')}finally{log.push('finally')}}
try{thrower()}catch(e){log.push(e.message)}
globalThis.result=JSON.stringify(log);`,
		want: `["0-0","0-1","1-0","1-1",true,-2,"finally","boom"]`,
	},
	{
		name: "strings and objects",
		src: `var o={'quoted key':'a\'b"c',n:0x1f,get twice(){return this.n*2},['comp'+'uted']:'é\n\t'};
var n=o.n,twice=o.twice;
class P{constructor(x){this.x=x}describe(){return ` + "`P(${this.x}) ${'tag'}`" + `}}
var arrow=(a,b=2)=>a*b;
var {x:px}=new P(9);
globalThis.result=JSON.stringify([o['quoted key'],n,twice,o.computed,new P(3).describe(),arrow(4),px,
'split this long string into several chunks please'.length,'café 😀'.length]);`,
		want: `["a'b\"c",31,62,"é\n\t","P(3) tag",8,9,49,7]`,
	},
	{
		name: "strict mode",
		src: `'use strict';
function self(){return this}
var seen=[];[3,1,2].sort(function(a,b){return a-b}).forEach(function(v){seen.push(v*100)});
globalThis.result=JSON.stringify([self()===undefined,seen]);`,
		want: `[true,[100,200,300]]`,
	},
}

func TestObfuscatedProgramsBehaveTheSame(t *testing.T) {
	thorough := Protected()
	thorough.ControlFlowFlatteningThreshold = 1
	thorough.DeadCodeInjectionThreshold = 1
	thorough.StringArrayThreshold = 1
	thorough.SplitStringsChunkLength = 3
	variants := map[string]Options{"protected": Protected(), "thorough": thorough}

	for _, p := range programs {
		if got := run(t, p.src); got != p.want {
			t.Fatalf("%s: plain result = %s, want %s", p.name, got, p.want)
		}
		for variant, opts := range variants {
			for _, seed := range []int64{1, 2, 5, 42, 1337} {
				opts.Seed = seed
				out, err := Obfuscate(p.src, opts)
				if err != nil {
					t.Fatalf("%s/%s/%d: Obfuscate: %s", p.name, variant, seed, err)
				}
				t.Run(fmt.Sprintf("%s/%s/%d", p.name, variant, seed), func(t *testing.T) {
					if got := run(t, out); got != p.want {
						t.Fatalf("result = %s, want %s\n%s", got, p.want, out)
					}
				})
			}
		}
	}
}
