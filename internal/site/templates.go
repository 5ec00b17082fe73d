package site

// staticPageTemplate is the Go html/template for each exported page.
const staticPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-sentinel="{{.Sentinel}}" data-base-path="{{.BasePath}}">
  <nav class="sidebar">
    <div class="sidebar-header">
      <a href="{{.BasePath}}index.html" class="site-title">{{.SiteName}}</a>
      <input type="text" id="search-input" placeholder="Search guides..." autocomplete="off">
    </div>
    <div class="sidebar-results" id="search-results"></div>
    {{.Nav}}
  </nav>
  <main class="content" id="content-pane">
    <article class="page-content">
      <h1>{{.Title}}</h1>
      {{.Content}}
    </article>
    {{if .IsArticle}}
    <section class="feedback" id="feedback-widget" data-article-id="{{.ArticleID}}">
      <p class="feedback-prompt">Was this article helpful?</p>
      <button class="vote-btn" id="vote-like" data-action="like">&#128077; <span id="like-count">0</span></button>
      <button class="vote-btn" id="vote-dislike" data-action="dislike">&#128078;</button>
      <p class="feedback-error" id="feedback-error" hidden></p>
    </section>
    {{end}}
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// staticHubTemplate renders the articles hub page.
const staticHubTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Articles — {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-base-path="{{.BasePath}}">
  <nav class="sidebar">
    <div class="sidebar-header">
      <a href="{{.BasePath}}index.html" class="site-title">{{.SiteName}}</a>
      <input type="text" id="search-input" placeholder="Search guides..." autocomplete="off">
    </div>
    <div class="sidebar-results" id="search-results"></div>
    {{.Nav}}
  </nav>
  <main class="content">
    <article class="page-content">
      <h1>Articles</h1>
      <ul class="article-list">
        {{range .Articles}}
        <li>
          <a href="{{.Slug}}.html">{{.Title}}</a>
          <p>{{.Description}}</p>
        </li>
        {{end}}
      </ul>
    </article>
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the stylesheet written next to the exported pages. It keeps
// the same look as the live server.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #57606a;
  --accent: #0969da;
  --sidebar-bg: #f6f8fa;
  --border: #d0d7de;
  --error: #cf222e;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  color: var(--fg);
  background: var(--bg);
  display: flex;
}

.sidebar {
  width: 280px;
  min-width: 280px;
  height: 100vh;
  position: sticky;
  top: 0;
  overflow-y: auto;
  background: var(--sidebar-bg);
  border-right: 1px solid var(--border);
  padding: 16px;
}

.site-title {
  font-weight: 700;
  font-size: 18px;
  color: var(--fg);
  text-decoration: none;
}

#search-input {
  width: 100%;
  margin-top: 12px;
  padding: 6px 10px;
  border: 1px solid var(--border);
  border-radius: 6px;
}

.sidebar-results { font-size: 13px; }
.sidebar-results a { display: block; padding: 4px 0; color: var(--accent); }

.nav-categories { list-style: none; padding: 0; margin: 16px 0 0; }
.nav-categories a { color: var(--fg); text-decoration: none; display: block; padding: 5px 8px; border-radius: 6px; }
.nav-categories a:hover { background: rgba(9,105,218,0.08); }
.nav-category.active > a { font-weight: 600; }

.nav-pages { list-style: none; padding-left: 12px; margin: 2px 0; }
.nav-page.active > a { color: var(--accent); font-weight: 600; }

.nav-sections { list-style: none; padding-left: 12px; margin: 2px 0; border-left: 2px solid var(--border); }
.nav-sections a { font-size: 13px; color: var(--muted); padding: 3px 8px; }
.nav-sections a.active { color: var(--accent); border-left: 2px solid var(--accent); margin-left: -14px; padding-left: 20px; }

.content {
  flex: 1;
  height: 100vh;
  overflow-y: auto;
  padding: 32px 48px;
  scroll-behavior: smooth;
}

.page-content { max-width: 760px; margin: 0 auto; line-height: 1.6; }
.page-content h1 { border-bottom: 1px solid var(--border); padding-bottom: 8px; }
.page-content h2 { margin-top: 32px; }
.page-content pre { background: var(--sidebar-bg); padding: 12px; border-radius: 6px; overflow-x: auto; }
.page-content code { font-size: 14px; }

.article-list { list-style: none; padding: 0; }
.article-list li { margin-bottom: 20px; }
.article-list a { font-size: 18px; font-weight: 600; color: var(--accent); text-decoration: none; }
.article-list p { margin: 4px 0 0; color: var(--muted); }

.feedback {
  max-width: 760px;
  margin: 48px auto 0;
  padding-top: 16px;
  border-top: 1px solid var(--border);
}
.feedback-prompt { color: var(--muted); }
.vote-btn {
  font-size: 16px;
  padding: 6px 14px;
  margin-right: 8px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  cursor: pointer;
}
.vote-btn:disabled { opacity: 0.5; cursor: default; }
.vote-btn.chosen { border-color: var(--accent); color: var(--accent); }
.feedback-error { color: var(--error); font-size: 14px; }
`

// jsContent is the page script written next to the exported pages. Unlike
// the live server script it has no sync socket: section tracking runs
// locally and search queries the prebuilt search-index.json.
const jsContent = `(function () {
  "use strict";

  var TOP_THRESHOLD = 50;
  var QUALIFY_OFFSET = 200;

  var body = document.body;
  var pane = document.getElementById("content-pane");
  var sectionNav = document.getElementById("section-nav");
  var sentinel = body.dataset.sentinel;
  var basePath = body.dataset.basePath || "";

  // ---- Section tracking ----------------------------------------------

  function sectionLinks() {
    if (!sectionNav) return [];
    return Array.prototype.slice.call(sectionNav.querySelectorAll(".section-link"));
  }

  function highlight(activeId) {
    sectionLinks().forEach(function (link) {
      link.classList.toggle("active", link.dataset.sectionId === activeId);
    });
  }

  function evaluate() {
    if (!pane) return sentinel;
    if (pane.scrollTop < TOP_THRESHOLD) return sentinel;
    var paneTop = pane.getBoundingClientRect().top;
    var active = sentinel;
    sectionLinks().forEach(function (link) {
      var id = link.dataset.sectionId;
      if (id === sentinel) return;
      var el = document.getElementById(id);
      if (!el) return;
      if (el.getBoundingClientRect().top - paneTop <= QUALIFY_OFFSET) active = id;
    });
    return active;
  }

  if (pane && sectionNav) {
    pane.addEventListener("scroll", function () { highlight(evaluate()); });
    highlight(evaluate());

    sectionLinks().forEach(function (link) {
      link.addEventListener("click", function (ev) {
        ev.preventDefault();
        var id = link.dataset.sectionId;
        if (id === sentinel) {
          pane.scrollTo({ top: 0, behavior: "smooth" });
          return;
        }
        var el = document.getElementById(id);
        if (el) el.scrollIntoView({ behavior: "smooth", block: "start" });
      });
    });
  }

  // ---- Feedback widget -----------------------------------------------

  var widget = document.getElementById("feedback-widget");
  if (widget) {
    var articleId = widget.dataset.articleId;
    var key = "vote_" + articleId;
    var likeBtn = document.getElementById("vote-like");
    var dislikeBtn = document.getElementById("vote-dislike");
    var likeCount = document.getElementById("like-count");
    var errorEl = document.getElementById("feedback-error");

    function storedVote() {
      var v = localStorage.getItem(key);
      return v === "like" || v === "dislike" ? v : null;
    }

    function closeVoting(choice) {
      likeBtn.disabled = true;
      dislikeBtn.disabled = true;
      if (choice === "like") likeBtn.classList.add("chosen");
      if (choice === "dislike") dislikeBtn.classList.add("chosen");
    }

    function openVoting() {
      likeBtn.disabled = false;
      dislikeBtn.disabled = false;
      likeBtn.classList.remove("chosen");
      dislikeBtn.classList.remove("chosen");
    }

    var existing = storedVote();
    if (existing) closeVoting(existing);

    fetch("/article/stats?articleId=" + encodeURIComponent(articleId))
      .then(function (r) { return r.ok ? r.json() : null; })
      .then(function (data) { if (data) likeCount.textContent = data.likes; })
      .catch(function () {});

    function castVote(choice) {
      if (storedVote()) return;

      var prev = parseInt(likeCount.textContent, 10) || 0;
      localStorage.setItem(key, choice);
      closeVoting(choice);
      errorEl.hidden = true;
      if (choice === "like") likeCount.textContent = prev + 1;

      fetch("/article/counter", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ articleId: articleId, action: choice })
      })
        .then(function (r) {
          if (!r.ok) throw new Error("status " + r.status);
          return r.json();
        })
        .then(function (data) { likeCount.textContent = data.likes; })
        .catch(function () {
          localStorage.removeItem(key);
          likeCount.textContent = prev;
          openVoting();
          errorEl.textContent = "Could not record your vote. Please try again.";
          errorEl.hidden = false;
        });
    }

    likeBtn.addEventListener("click", function () { castVote("like"); });
    dislikeBtn.addEventListener("click", function () { castVote("dislike"); });
  }

  // ---- Search over the prebuilt index --------------------------------

  var searchInput = document.getElementById("search-input");
  var searchResults = document.getElementById("search-results");
  var searchIndex = null;

  function loadIndex() {
    if (searchIndex) return Promise.resolve(searchIndex);
    return fetch(basePath + "search-index.json")
      .then(function (r) { return r.json(); })
      .then(function (data) { searchIndex = data; return data; });
  }

  if (searchInput && searchResults) {
    searchInput.addEventListener("keydown", function (ev) {
      if (ev.key !== "Enter") return;
      var query = searchInput.value.trim().toLowerCase();
      if (!query) { searchResults.innerHTML = ""; return; }
      loadIndex()
        .then(function (entries) {
          searchResults.innerHTML = "";
          entries
            .filter(function (e) {
              return e.title.toLowerCase().indexOf(query) >= 0 ||
                e.content.toLowerCase().indexOf(query) >= 0;
            })
            .slice(0, 8)
            .forEach(function (e) {
              var a = document.createElement("a");
              a.href = basePath + e.path;
              a.textContent = e.title;
              searchResults.appendChild(a);
            });
        })
        .catch(function () {});
    });
  }
})();
`
