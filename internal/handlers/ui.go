package handlers

import "net/http"

// UIHandler serves the single-page browser UI for indexing and querying.
type UIHandler struct{}

// NewUIHandler creates a new UIHandler.
func NewUIHandler() *UIHandler {
	return &UIHandler{}
}

// ServeHTTP serves the UI page.
func (h *UIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(uiPage))
}

const uiPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>ragquery</title>
<style>
  body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
  section { margin-bottom: 2rem; }
  textarea { width: 100%; height: 6rem; }
  input[type=text] { width: 100%; }
  pre { background: #f4f4f4; padding: 0.75rem; white-space: pre-wrap; }
  button { margin-top: 0.5rem; }
</style>
</head>
<body>
<h1>ragquery</h1>

<section>
  <h2>Index text</h2>
  <textarea id="index-text" placeholder="Paste text to index"></textarea>
  <button onclick="indexText()">Index</button>
  <pre id="index-out"></pre>
</section>

<section>
  <h2>Index file</h2>
  <input type="file" id="index-file">
  <button onclick="indexFile()">Upload</button>
  <pre id="file-out"></pre>
</section>

<section>
  <h2>Index archive (zip)</h2>
  <input type="file" id="index-archive" accept=".zip">
  <button onclick="indexArchive()">Upload</button>
  <pre id="archive-out"></pre>
</section>

<section>
  <h2>Ask</h2>
  <input type="text" id="question" placeholder="Ask a question about indexed content">
  <button onclick="ask()">Ask</button>
  <pre id="answer"></pre>
</section>

<script>
async function post(url, body) {
  const resp = await fetch(url, body instanceof FormData
    ? { method: "POST", body }
    : { method: "POST", headers: { "Content-Type": "application/json" }, body: JSON.stringify(body) });
  return resp.json();
}

async function indexText() {
  const data = await post("/index", { text: document.getElementById("index-text").value });
  document.getElementById("index-out").textContent = JSON.stringify(data, null, 2);
}

async function indexFile() {
  const input = document.getElementById("index-file");
  if (!input.files.length) return;
  const form = new FormData();
  form.append("file", input.files[0]);
  const data = await post("/index_file", form);
  document.getElementById("file-out").textContent = JSON.stringify(data, null, 2);
}

async function indexArchive() {
  const input = document.getElementById("index-archive");
  if (!input.files.length) return;
  const form = new FormData();
  form.append("file", input.files[0]);
  const data = await post("/index_archive", form);
  document.getElementById("archive-out").textContent = JSON.stringify(data, null, 2);
}

async function ask() {
  const data = await post("/query", { question: document.getElementById("question").value });
  document.getElementById("answer").textContent = data.answer || JSON.stringify(data, null, 2);
}
</script>
</body>
</html>
`
