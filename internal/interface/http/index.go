package http

import (
	"html/template"
	"time"

	"github.com/yanqian/summarize-console/internal/domain/page"
)

const (
	indexTemplateName = "index"
	// pollInterval keeps a single open page well under the default rate limit.
	pollInterval = 5 * time.Second
	// settleDelay is how long the page waits after a trigger before its first refresh.
	settleDelay = 750 * time.Millisecond
)

type indexView struct {
	InputElement  string
	OutputElement string
	AuthRequired  bool
	PollMillis    int64
	SettleMillis  int64
}

func newIndexView(cfg page.Config, authRequired bool) indexView {
	return indexView{
		InputElement:  cfg.InputElement,
		OutputElement: cfg.OutputElement,
		AuthRequired:  authRequired,
		PollMillis:    pollInterval.Milliseconds(),
		SettleMillis:  settleDelay.Milliseconds(),
	}
}

var indexTemplate = template.Must(template.New(indexTemplateName).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <title>Chat Summarizer</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 480px; margin: 3rem auto; }
    textarea { width: 100%; height: 120px; }
    pre { white-space: pre-wrap; }
    #status { color: #a00; min-height: 1.2em; }
  </style>
</head>
<body>
  <h1>Chat Summarizer</h1>
  {{if .AuthRequired}}<label>Access token <input id="authToken" type="password" autocomplete="off"/></label>{{end}}
  <textarea id="{{.InputElement}}"></textarea>
  <button id="summarizeBtn">Summarize</button>
  <div id="status"></div>
  <pre id="{{.OutputElement}}"></pre>
  <script>
    const authRequired = {{.AuthRequired}};
    const input = document.getElementById({{.InputElement}});
    const output = document.getElementById({{.OutputElement}});
    const status = document.getElementById('status');
    const tokenField = document.getElementById('authToken');
    if (tokenField) {
      tokenField.value = sessionStorage.getItem('authToken') || '';
      tokenField.addEventListener('change', () => {
        sessionStorage.setItem('authToken', tokenField.value.trim());
        refresh();
      });
    }
    function headers(extra) {
      const h = Object.assign({}, extra);
      const token = tokenField ? tokenField.value.trim() : '';
      if (authRequired && token) { h['Authorization'] = 'Bearer ' + token; }
      return h;
    }
    async function failure(res) {
      try { return (await res.json()).error.message; } catch (e) { return res.status + ' ' + res.statusText; }
    }
    async function refresh() {
      try {
        const res = await fetch('/ui/elements/' + encodeURIComponent({{.OutputElement}}), {headers: headers()});
        if (!res.ok) { status.textContent = await failure(res); return; }
        status.textContent = '';
        output.textContent = (await res.json()).text;
      } catch (e) {
        status.textContent = String(e);
      }
    }
    document.getElementById('summarizeBtn').addEventListener('click', async () => {
      try {
        const put = await fetch('/ui/elements/' + encodeURIComponent({{.InputElement}}), {
          method: 'PUT',
          headers: headers({'Content-Type': 'application/json'}),
          body: JSON.stringify({text: input.value})
        });
        if (!put.ok) { status.textContent = await failure(put); return; }
        const fired = await fetch('/ui/trigger', {method: 'POST', headers: headers()});
        if (!fired.ok) { status.textContent = await failure(fired); return; }
        status.textContent = '';
        setTimeout(refresh, {{.SettleMillis}});
      } catch (e) {
        status.textContent = String(e);
      }
    });
    setInterval(refresh, {{.PollMillis}});
    refresh();
  </script>
</body>
</html>
`))
