package api

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif;
         margin: 0; padding: 24px; background: #fcfcfc; color: #222; }
  h1 { margin: 0 0 4px 0; font-size: 24px; }
  p.subtitle { margin: 0 0 16px 0; color: #666; }
  #filters { margin-bottom: 12px; }
  #filters label { margin-right: 14px; font-size: 14px; cursor: pointer; }
  #chart-wrap { position: relative; }
  #tooltip { position: absolute; display: none; pointer-events: none;
             background: #fff; border: 1px solid #ccc; border-radius: 4px;
             padding: 8px 10px; font-size: 13px; box-shadow: 0 2px 6px rgba(0,0,0,.15); }
  #tooltip .tt-name { font-weight: 600; margin-bottom: 2px; }
  svg text.bubble-label { font-size: 11px; fill: #333; pointer-events: none; }
  svg text.annotation { font-size: 15px; fill: rgba(100,100,100,0.5); }
  svg text.axis { font-size: 12px; fill: #555; }
  svg text.axis-title { font-size: 16px; fill: #333; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="subtitle">{{.Subtitle}}</p>
<div id="filters"></div>
<div id="chart-wrap">
  <svg id="chart" width="960" height="720"></svg>
  <div id="tooltip"></div>
</div>
<script>
var SPEC = {{.Spec}};

var W = 960, H = 720;
var M = {top: 30, right: 30, bottom: 60, left: 70};
var hidden = {};

function sx(v) {
  var span = SPEC.x_range[1] - SPEC.x_range[0];
  return M.left + (v - SPEC.x_range[0]) / span * (W - M.left - M.right);
}
function sy(v) {
  var span = SPEC.y_range[1] - SPEC.y_range[0];
  return H - M.bottom - (v - SPEC.y_range[0]) / span * (H - M.top - M.bottom);
}

function el(name, attrs, text) {
  var node = document.createElementNS("http://www.w3.org/2000/svg", name);
  for (var k in attrs) { node.setAttribute(k, attrs[k]); }
  if (text !== undefined) { node.textContent = text; }
  return node;
}

function render() {
  var svg = document.getElementById("chart");
  while (svg.firstChild) { svg.removeChild(svg.firstChild); }

  SPEC.regions.forEach(function (rg) {
    svg.appendChild(el("rect", {
      x: sx(rg.x0), y: sy(rg.y1),
      width: sx(rg.x1) - sx(rg.x0), height: sy(rg.y0) - sy(rg.y1),
      fill: rg.fill, opacity: 0.6
    }));
  });

  svg.appendChild(el("line", {
    x1: sx(SPEC.divider_x), y1: sy(SPEC.y_range[0]),
    x2: sx(SPEC.divider_x), y2: sy(SPEC.y_range[1]),
    stroke: "grey", "stroke-dasharray": "6,4"
  }));
  svg.appendChild(el("line", {
    x1: sx(SPEC.x_range[0]), y1: sy(SPEC.divider_y),
    x2: sx(SPEC.x_range[1]), y2: sy(SPEC.divider_y),
    stroke: "grey", "stroke-dasharray": "6,4"
  }));

  SPEC.annotations.forEach(function (an) {
    svg.appendChild(el("text", {
      x: sx(an.x), y: sy(an.y), "text-anchor": "middle", "class": "annotation"
    }, an.text));
  });

  drawAxes(svg);

  var tooltip = document.getElementById("tooltip");
  SPEC.points.forEach(function (pt) {
    if (hidden[pt.category]) { return; }
    var c = el("circle", {
      cx: sx(pt.x), cy: sy(pt.y), r: pt.radius,
      fill: pt.color, "fill-opacity": 0.85, stroke: "#777", "stroke-width": 0.5
    });
    c.addEventListener("mousemove", function (ev) {
      tooltip.style.display = "block";
      tooltip.style.left = (ev.offsetX + 16) + "px";
      tooltip.style.top = (ev.offsetY + 16) + "px";
      tooltip.innerHTML =
        '<div class="tt-name"></div>' +
        '<div>Category: <span></span></div>' +
        '<div>Complexity fit: <span></span></div>' +
        '<div>Data fit: <span></span></div>' +
        '<div>Study share: <span></span></div>';
      var spans = tooltip.querySelectorAll("span");
      tooltip.querySelector(".tt-name").textContent = pt.name;
      spans[0].textContent = pt.category;
      spans[1].textContent = pt.hover.complexity_fit.toFixed(2);
      spans[2].textContent = pt.hover.data_fit.toFixed(2);
      spans[3].textContent = pt.hover.share.toFixed(1) + "%";
    });
    c.addEventListener("mouseleave", function () {
      tooltip.style.display = "none";
    });
    svg.appendChild(c);
    svg.appendChild(el("text", {
      x: sx(pt.x), y: sy(pt.y) + 4, "text-anchor": "middle", "class": "bubble-label"
    }, pt.label));
  });
}

function drawAxes(svg) {
  var ticks = [0, 0.2, 0.4, 0.6, 0.8, 1.0];
  ticks.forEach(function (t) {
    svg.appendChild(el("text", {
      x: sx(t), y: H - M.bottom + 20, "text-anchor": "middle", "class": "axis"
    }, t.toFixed(1)));
    svg.appendChild(el("text", {
      x: M.left - 12, y: sy(t) + 4, "text-anchor": "end", "class": "axis"
    }, t.toFixed(1)));
  });
  svg.appendChild(el("text", {
    x: (M.left + W - M.right) / 2, y: H - 16, "text-anchor": "middle", "class": "axis-title"
  }, SPEC.x_title));
  var yt = el("text", {
    x: 20, y: (M.top + H - M.bottom) / 2, "text-anchor": "middle", "class": "axis-title"
  }, SPEC.y_title);
  yt.setAttribute("transform", "rotate(-90 20 " + ((M.top + H - M.bottom) / 2) + ")");
  svg.appendChild(yt);
}

function buildFilters() {
  var wrap = document.getElementById("filters");
  SPEC.categories.forEach(function (cat) {
    var label = document.createElement("label");
    var box = document.createElement("input");
    box.type = "checkbox";
    box.checked = true;
    box.addEventListener("change", function () {
      hidden[cat] = !box.checked;
      render();
    });
    label.appendChild(box);
    label.appendChild(document.createTextNode(" " + cat));
    wrap.appendChild(label);
  });
}

buildFilters();
render();
</script>
</body>
</html>
`

const errorHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Dashboard error</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif;
         padding: 48px; background: #fcfcfc; color: #222; }
  .box { border: 1px solid #e0b4b4; background: #fff0f0; border-radius: 6px;
         padding: 24px; max-width: 640px; }
  h1 { font-size: 20px; margin-top: 0; }
</style>
</head>
<body>
<div class="box">
  <h1>Dashboard unavailable</h1>
  <p>{{.Message}}</p>
</div>
</body>
</html>
`
