package server

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardPage))

// handleDashboard serves the single-page shell. All data flows through the
// JSON API; the page itself is static.
// GET /
func (s *Server) handleDashboard(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(c.Writer, gin.H{"Title": "College Football SRS Dashboard"}); err != nil {
		s.logger.Error().Err(err).Msg("render dashboard page")
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

const dashboardPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
<style>
  body { margin: 0; font-family: system-ui, sans-serif; color: #1c1c1c; background: #fafafa; }
  .wrap { display: flex; min-height: 100vh; }
  aside { width: 280px; padding: 16px; background: #f0f0f0; border-right: 1px solid #ddd; }
  main { flex: 1; padding: 16px 24px; }
  h1 { font-size: 1.6rem; }
  label { display: block; font-weight: 600; margin: 14px 0 4px; font-size: 0.85rem; }
  select[multiple] { width: 100%; min-height: 110px; }
  input[type=range] { width: 100%; }
  .warning { display: none; background: #fff3cd; border: 1px solid #ffe08a; padding: 12px; border-radius: 6px; margin-bottom: 12px; }
  button { margin-top: 16px; padding: 8px 14px; border: 0; border-radius: 6px; background: #2a5db0; color: #fff; cursor: pointer; }
  table { border-collapse: collapse; margin-top: 16px; font-size: 0.85rem; }
  th, td { border: 1px solid #ddd; padding: 4px 10px; text-align: left; }
  #rawTable { display: none; }
</style>
</head>
<body>
<div class="wrap">
  <aside>
    <h2>Filters</h2>
    <label for="conferences">Select Conference(s)</label>
    <select id="conferences" multiple></select>
    <label for="teams">Select Team(s)</label>
    <select id="teams" multiple></select>
    <label for="seasons">Select Season(s)</label>
    <select id="seasons" multiple></select>
    <label for="window">SRS Moving Average Window (weeks): <span id="windowValue">1</span></label>
    <input type="range" id="window" min="1" max="5" value="1">
    <label><input type="checkbox" id="animate"> Animate by Week?</label>
    <label><input type="checkbox" id="showTable"> Show Raw Data Table</label>
    <button id="download">📥 Download Filtered SRS Data</button>
  </aside>
  <main>
    <h1>{{.Title}}</h1>
    <div id="warning" class="warning"></div>
    <div id="chart"></div>
    <div id="rawTable">
      <table>
        <thead>
          <tr><th>Team</th><th>Conference</th><th>Season</th><th>Week</th><th>SRS</th><th>Season + Week</th></tr>
        </thead>
        <tbody id="tableBody"></tbody>
      </table>
    </div>
  </main>
</div>
<script>
function selectedValues(id) {
  var out = [];
  var opts = document.getElementById(id).selectedOptions;
  for (var i = 0; i < opts.length; i++) { out.push(opts[i].value); }
  return out;
}

function fillSelect(id, values, keepSelection) {
  var el = document.getElementById(id);
  var previous = keepSelection ? selectedValues(id) : null;
  el.innerHTML = '';
  values.forEach(function (v) {
    var opt = document.createElement('option');
    opt.value = String(v);
    opt.textContent = String(v);
    opt.selected = previous === null || previous.indexOf(String(v)) !== -1;
    el.appendChild(opt);
  });
}

function queryString() {
  return 'conferences=' + encodeURIComponent(selectedValues('conferences').join(',')) +
    '&teams=' + encodeURIComponent(selectedValues('teams').join(',')) +
    '&seasons=' + encodeURIComponent(selectedValues('seasons').join(',')) +
    '&window=' + document.getElementById('window').value +
    '&animate=' + document.getElementById('animate').checked;
}

async function loadOptions(initial) {
  var url = '/api/v1/options';
  if (!initial) {
    url += '?conferences=' + encodeURIComponent(selectedValues('conferences').join(','));
  }
  var resp = await fetch(url);
  if (!resp.ok) { return; }
  var opts = await resp.json();
  if (initial) {
    fillSelect('conferences', opts.conferences, false);
    fillSelect('seasons', opts.seasons, false);
  }
  fillSelect('teams', opts.teams, false);
}

async function run() {
  var resp = await fetch('/api/v1/chart?' + queryString());
  if (!resp.ok) { return; }
  var body = await resp.json();
  var warning = document.getElementById('warning');
  var chartDiv = document.getElementById('chart');
  var download = document.getElementById('download');
  if (body.empty) {
    warning.textContent = body.warning;
    warning.style.display = 'block';
    chartDiv.style.display = 'none';
    document.getElementById('rawTable').style.display = 'none';
    download.style.display = 'none';
    return;
  }
  warning.style.display = 'none';
  chartDiv.style.display = 'block';
  download.style.display = 'inline-block';
  var fig = body.chart;
  Plotly.newPlot('chart', fig.data, fig.layout).then(function () {
    if (fig.frames && fig.frames.length) {
      Plotly.addFrames('chart', fig.frames).then(function () {
        Plotly.animate('chart');
      });
    }
  });
  if (document.getElementById('showTable').checked) {
    loadTable();
  } else {
    document.getElementById('rawTable').style.display = 'none';
  }
}

async function loadTable() {
  var resp = await fetch('/api/v1/table?' + queryString());
  if (!resp.ok) { return; }
  var body = await resp.json();
  var tbody = document.getElementById('tableBody');
  tbody.innerHTML = '';
  body.data.forEach(function (row) {
    var tr = document.createElement('tr');
    [row.team, row.team_conference, row.season, row.week, row.ratings.toFixed(2), row.period_key].forEach(function (cell) {
      var td = document.createElement('td');
      td.textContent = String(cell);
      tr.appendChild(td);
    });
    tbody.appendChild(tr);
  });
  document.getElementById('rawTable').style.display = 'block';
}

document.getElementById('conferences').addEventListener('change', async function () {
  await loadOptions(false);
  run();
});
['teams', 'seasons', 'animate', 'showTable'].forEach(function (id) {
  document.getElementById(id).addEventListener('change', run);
});
document.getElementById('window').addEventListener('input', function () {
  document.getElementById('windowValue').textContent = this.value;
});
document.getElementById('window').addEventListener('change', run);
document.getElementById('download').addEventListener('click', function () {
  window.location = '/api/v1/export.csv?' + queryString();
});

loadOptions(true).then(run);
</script>
</body>
</html>
`
