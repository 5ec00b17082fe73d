package server

// styleCSS is the stylesheet served at /static/style.css.
const styleCSS = `:root {
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

.coming-soon .badge {
  display: inline-block;
  background: var(--accent);
  color: #fff;
  padding: 2px 10px;
  border-radius: 12px;
  font-size: 13px;
}

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

// scriptJS is the page script served at /static/script.js. It mirrors the
// section tracker thresholds, streams scroll geometry to the sync socket,
// and drives the feedback widget against the feedback endpoints.
const scriptJS = `(function () {
  "use strict";

  var TOP_THRESHOLD = 50;
  var QUALIFY_OFFSET = 200;

  var body = document.body;
  var pane = document.getElementById("content-pane");
  var sectionNav = document.getElementById("section-nav");
  var sentinel = body.dataset.sentinel;

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

  function headingSpots() {
    var paneTop = pane.getBoundingClientRect().top;
    var spots = [];
    sectionLinks().forEach(function (link) {
      var id = link.dataset.sectionId;
      if (id === sentinel) return;
      var el = document.getElementById(id);
      if (!el) return;
      spots.push({ id: id, top: el.getBoundingClientRect().top - paneTop });
    });
    return spots;
  }

  // Local evaluation, same rules as the server-side tracker: below the top
  // threshold the sentinel wins; otherwise the last heading at or above the
  // qualify offset.
  function evaluate() {
    if (!pane) return sentinel;
    if (pane.scrollTop < TOP_THRESHOLD) return sentinel;
    var active = sentinel;
    headingSpots().forEach(function (spot) {
      if (spot.top <= QUALIFY_OFFSET) active = spot.id;
    });
    return active;
  }

  var socket = null;
  if (pane && sectionNav && body.dataset.category) {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    try {
      socket = new WebSocket(proto + "//" + location.host + "/ws/sections?category=" +
        encodeURIComponent(body.dataset.category) + "&section=" +
        encodeURIComponent(body.dataset.section));
      socket.onmessage = function (ev) {
        var msg = JSON.parse(ev.data);
        if (msg.active) highlight(msg.active);
      };
    } catch (e) {
      socket = null;
    }

    pane.addEventListener("scroll", function () {
      if (socket && socket.readyState === WebSocket.OPEN) {
        socket.send(JSON.stringify({ scroll_top: pane.scrollTop, headings: headingSpots() }));
      } else {
        highlight(evaluate());
      }
    });
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

    // Best-effort count fetch; failures keep the last known value.
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

  // ---- Search ---------------------------------------------------------

  var searchInput = document.getElementById("search-input");
  var searchResults = document.getElementById("search-results");
  if (searchInput && searchResults) {
    searchInput.addEventListener("keydown", function (ev) {
      if (ev.key !== "Enter") return;
      var query = searchInput.value.trim();
      if (!query) { searchResults.innerHTML = ""; return; }
      fetch("/api/search", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ query: query })
      })
        .then(function (r) { return r.json(); })
        .then(function (data) {
          searchResults.innerHTML = "";
          (data.results || []).forEach(function (hit) {
            var a = document.createElement("a");
            a.href = hit.path;
            a.textContent = hit.title;
            searchResults.appendChild(a);
          });
        })
        .catch(function () {});
    });
  }
})();
`
