package server

// pageTemplate renders one guide section or article page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body data-category="{{.Category}}" data-section="{{.Section}}" data-sentinel="{{.Sentinel}}">
  <nav class="sidebar">
    <div class="sidebar-header">
      <a href="/" class="site-title">{{.SiteName}}</a>
      <input type="text" id="search-input" placeholder="Search guides..." autocomplete="off">
    </div>
    <div class="sidebar-results" id="search-results"></div>
    <ul class="nav-categories">
      {{range .Nav}}
      <li class="nav-category{{if .Active}} active{{end}}">
        <a href="/{{.Slug}}">{{.Name}}</a>
        {{if .Active}}
        <ul class="nav-pages">
          {{range .Pages}}
          <li class="nav-page{{if .Active}} active{{end}}">
            <a href="/{{$.Category}}/{{.Slug}}">{{.Title}}</a>
            {{if .Active}}
            <ul class="nav-sections" id="section-nav">
              {{range .Sections}}
              <li><a href="#{{.ID}}" class="section-link" data-section-id="{{.ID}}">{{.Title}}</a></li>
              {{end}}
            </ul>
            {{end}}
          </li>
          {{end}}
        </ul>
        {{end}}
      </li>
      {{end}}
      <li class="nav-category"><a href="/articles">Articles</a></li>
      <li class="nav-category"><a href="/api-finder">API Finder</a></li>
      <li class="nav-category"><a href="/planning-agent">Planning Agent</a></li>
    </ul>
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
  <script src="/static/script.js"></script>
</body>
</html>`

// hubTemplate renders the articles hub.
const hubTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Articles — {{.SiteName}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <nav class="sidebar">
    <div class="sidebar-header">
      <a href="/" class="site-title">{{.SiteName}}</a>
    </div>
    <ul class="nav-categories">
      {{range .Nav}}
      <li class="nav-category"><a href="/{{.Slug}}">{{.Name}}</a></li>
      {{end}}
      <li class="nav-category active"><a href="/articles">Articles</a></li>
      <li class="nav-category"><a href="/api-finder">API Finder</a></li>
      <li class="nav-category"><a href="/planning-agent">Planning Agent</a></li>
    </ul>
  </nav>
  <main class="content">
    <article class="page-content">
      <h1>Articles</h1>
      <ul class="article-list">
        {{range .Articles}}
        <li>
          <a href="/articles/{{.Slug}}">{{.Title}}</a>
          <p>{{.Description}}</p>
        </li>
        {{end}}
      </ul>
    </article>
  </main>
</body>
</html>`

// comingSoonTemplate renders the placeholder feature pages.
const comingSoonTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteName}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <nav class="sidebar">
    <div class="sidebar-header">
      <a href="/" class="site-title">{{.SiteName}}</a>
    </div>
    <ul class="nav-categories">
      {{range .Nav}}
      <li class="nav-category"><a href="/{{.Slug}}">{{.Name}}</a></li>
      {{end}}
      <li class="nav-category"><a href="/articles">Articles</a></li>
      <li class="nav-category"><a href="/api-finder">API Finder</a></li>
      <li class="nav-category"><a href="/planning-agent">Planning Agent</a></li>
    </ul>
  </nav>
  <main class="content">
    <article class="page-content coming-soon">
      <h1>{{.Title}}</h1>
      <p class="badge">Coming soon</p>
      <p>{{.Message}}</p>
    </article>
  </main>
</body>
</html>`
