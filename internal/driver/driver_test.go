package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"yaplc/internal/ast"
	"yaplc/internal/diag"
	"yaplc/internal/source"
	"yaplc/internal/testkit"
	"yaplc/internal/token"
)

const mismatchSource = "Program demo;\nDeclare x: int;\nBegin\n  x := 1.5;\nEnd demo.\n"

func tk(kind token.Kind, text string, line, col uint32) token.Token {
	return token.Token{Kind: kind, Text: text, Pos: source.Pos{Line: line, Col: col}}
}

// mismatchProgram mirrors mismatchSource.
func mismatchProgram(src string) *ast.Program {
	return &ast.Program{
		Name:   tk(token.Ident, "demo", 1, 9),
		Source: src,
		Decls:  []ast.Decl{ast.Var(tk(token.Ident, "x", 2, 9), ast.Type(tk(token.Ident, "int", 2, 12), 0))},
		Body: ast.Block{
			Begin: tk(token.KwBegin, "", 3, 1),
			Stmts: []ast.Stmt{ast.Assign(tk(token.Assign, "", 4, 5),
				ast.Ident(tk(token.Ident, "x", 4, 3)),
				ast.FloatLit(tk(token.FloatLit, "1.5", 4, 8)))},
		},
		End: tk(token.Ident, "demo", 5, 5),
	}
}

func writeProgram(t *testing.T, path string, prog *ast.Program) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := EncodeProgram(f, prog, FormatOf(path)); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func golden(r FileResult) string {
	return diag.FormatGoldenDiagnostics(r.Bag.Items(), r.FileSet, false)
}

func TestCheckFilesKeepsOrderAndIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "demo.yapl"), []byte(mismatchSource), 0o600); err != nil {
		t.Fatal(err)
	}
	withSource := filepath.Join(dir, "demo.json")
	writeProgram(t, withSource, mismatchProgram("demo.yapl"))
	packed := filepath.Join(dir, "demo.yast")
	writeProgram(t, packed, mismatchProgram(""))
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"name": 1`), 0o600); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.json")

	results, err := CheckFiles(context.Background(), []string{withSource, packed, broken, missing}, Options{BaseDir: dir, Jobs: 2})
	if err != nil {
		t.Fatalf("CheckFiles: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, want := range []string{withSource, packed, broken, missing} {
		if results[i].Path != want {
			t.Fatalf("result %d is %s, want %s", i, results[i].Path, want)
		}
		if !results[i].HasErrors() {
			t.Fatalf("%s: expected errors", want)
		}
	}

	const msg = "type mismatch in assignment: expected int, found float"
	if got := golden(results[0]); got != "error SEM3029 demo.yapl:4:5 "+msg {
		t.Fatalf("json program with source: %q", got)
	}
	if got := golden(results[1]); got != "error SEM3029 4:5 "+msg {
		t.Fatalf("msgpack program: %q", got)
	}
	if code := results[2].Bag.Items()[0].Code; code != diag.IODecodeError {
		t.Fatalf("broken file: got %s", code.ID())
	}
	if code := results[3].Bag.Items()[0].Code; code != diag.IOLoadFileError {
		t.Fatalf("missing file: got %s", code.ID())
	}

	for _, r := range results[:2] {
		if err := testkit.CheckResultInvariants(r.Sema); err != nil {
			t.Fatalf("%s: %v", r.Path, err)
		}
		if n := len(r.Timings.Phases); n != 3 {
			t.Fatalf("%s: expected load, decode and sema timings, got %d", r.Path, n)
		}
	}
	if n := len(results[3].Timings.Phases); n != 1 || results[3].Timings.Phases[0].Note != "failed" {
		t.Fatalf("missing file timings: %+v", results[3].Timings)
	}
}

func TestDecodeHandWrittenJSON(t *testing.T) {
	const doc = `{
  "name": {"kind": "identifier", "text": "demo", "pos": {"line": 1, "col": 9}},
  "body": {
    "begin": {"kind": "Begin", "pos": {"line": 2, "col": 1}},
    "stmts": [
      {"kind": "call", "tok": {"kind": "identifier", "text": "writeln", "pos": {"line": 3, "col": 3}},
       "value": {"kind": "call", "tok": {"kind": "identifier", "text": "writeln", "pos": {"line": 3, "col": 3}}}}
    ]
  },
  "end": {"kind": "identifier", "text": "demo", "pos": {"line": 4, "col": 5}}
}`
	prog, err := DecodeProgram([]byte(doc), FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(prog.Body.Stmts) != 1 || prog.Body.Stmts[0].Kind != ast.StmtCall || prog.Body.Stmts[0].Value.Tok.Text != "writeln" {
		t.Fatalf("unexpected program: %+v", prog.Body)
	}
	if _, err := DecodeProgram([]byte(`{"nmae": {}}`), FormatJSON); err == nil {
		t.Fatalf("unknown fields must be rejected")
	}
	if _, err := DecodeProgram(nil, FormatUnknown); err != ErrUnknownFormat {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.yast", "notes.txt", "c.msgpack"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	single := filepath.Join(dir, "notes.txt")
	got, err := ExpandPaths([]string{dir, single})
	if err != nil {
		t.Fatalf("ExpandPaths: %v", err)
	}
	var names []string
	for _, p := range got {
		names = append(names, filepath.Base(p))
	}
	if strings.Join(names, ",") != "a.yast,b.json,c.msgpack,notes.txt" {
		t.Fatalf("unexpected expansion: %v", names)
	}
	if _, err := ExpandPaths([]string{filepath.Join(dir, "nope")}); err == nil {
		t.Fatalf("missing path must fail")
	}
}

func TestCheckFilesHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CheckFiles(ctx, []string{"a.json", "b.json"}, Options{Jobs: 1})
	if err == nil {
		t.Fatalf("expected context error")
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func TestCheckFileReportsProgress(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "demo.json")
	writeProgram(t, prog, mismatchProgram(""))

	sink := &recordingSink{}
	CheckFile(context.Background(), prog, Options{Progress: sink})
	CheckFile(context.Background(), filepath.Join(dir, "missing.json"), Options{Progress: sink})

	var got []string
	for _, e := range sink.events {
		got = append(got, filepath.Base(e.File)+":"+string(e.Stage)+":"+string(e.Status))
	}
	want := []string{
		"demo.json:load:working",
		"demo.json:decode:working",
		"demo.json:sema:working",
		"demo.json::error",
		"missing.json:load:working",
		"missing.json::error",
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("events:\n got %v\nwant %v", got, want)
	}
}

func TestCheckFileRejectsMalformedTrees(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		prog *ast.Program
		want string
	}{
		{"huge.json", varProgram(ast.Type(tk(token.Ident, "int", 2, 12), 1<<33), nil), "2:12: array type int has 8589934592 dimensions"},
		{"negative.yast", varProgram(ast.Type(tk(token.Ident, "int", 2, 12), -1), nil), "2:12: array type int has -1 dimensions"},
		{"literal.json", varProgram(ast.Type(tk(token.Ident, "int", 2, 12), 0),
			ptrExpr(ast.IntLit(tk(token.IntLit, "9223372036854775808", 4, 8)))), `4:8: invalid integer literal "9223372036854775808"`},
	}
	for _, tc := range cases {
		path := filepath.Join(dir, tc.name)
		writeProgram(t, path, tc.prog)
		res := CheckFile(context.Background(), path, Options{})
		items := res.Bag.Items()
		if len(items) != 1 || items[0].Code != diag.IODecodeError {
			t.Fatalf("%s: expected one decode error, got %s", tc.name, golden(res))
		}
		if !strings.Contains(items[0].Message, tc.want) {
			t.Fatalf("%s: message %q lacks %q", tc.name, items[0].Message, tc.want)
		}
		if res.Program != nil {
			t.Fatalf("%s: malformed tree must not reach the checker", tc.name)
		}
	}
}

// varProgram declares x with typ and optionally assigns value to it.
func varProgram(typ ast.TypeExpr, value *ast.Expr) *ast.Program {
	prog := &ast.Program{
		Name:  tk(token.Ident, "demo", 1, 9),
		Decls: []ast.Decl{ast.Var(tk(token.Ident, "x", 2, 9), typ)},
		Body:  ast.Block{Begin: tk(token.KwBegin, "", 3, 1)},
		End:   tk(token.Ident, "demo", 5, 5),
	}
	if value != nil {
		prog.Body.Stmts = []ast.Stmt{ast.Assign(tk(token.Assign, "", 4, 5), ast.Ident(tk(token.Ident, "x", 4, 3)), *value)}
	}
	return prog
}

func ptrExpr(e ast.Expr) *ast.Expr { return &e }
