package render

const githubDefaultTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} | Portfolio</title>
    <style>
        body { margin: 0; font-family: -apple-system, 'Segoe UI', sans-serif; color: #24292f; background: #ffffff; }
        .container { max-width: 860px; margin: 0 auto; padding: 48px 24px; }
        header { display: flex; align-items: center; gap: 24px; border-bottom: 1px solid #d0d7de; padding-bottom: 32px; }
        header img { width: 96px; height: 96px; border-radius: 50%; }
        h1 { margin: 0; font-size: 28px; }
        .title { color: #57606a; margin: 4px 0; }
        .meta { color: #57606a; font-size: 14px; }
        section { margin-top: 40px; }
        h2 { font-size: 20px; border-bottom: 1px solid #d0d7de; padding-bottom: 8px; }
        .project { padding: 12px 0; border-bottom: 1px solid #eaeef2; }
        .project a { color: #0969da; text-decoration: none; font-weight: 600; }
        .project p { margin: 4px 0; color: #57606a; }
        .skill { display: inline-block; background: #ddf4ff; color: #0969da; border-radius: 12px; padding: 2px 10px; margin: 2px; font-size: 13px; }
        .job { margin-bottom: 20px; }
        .job h3 { margin: 0; font-size: 16px; }
        .job .duration { color: #57606a; font-size: 13px; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            {{if .AvatarURL}}<img src="{{.AvatarURL}}" alt="{{.Name}}">{{end}}
            <div>
                <h1>{{.Name}}</h1>
                {{if .Title}}<div class="title">{{.Title}}</div>{{end}}
                <div class="meta">
                    @{{.Username}}{{if .Location}} &middot; {{.Location}}{{end}}
                    &middot; {{.PublicRepos}} repos &middot; {{.Followers}} followers
                </div>
            </div>
        </header>
        {{if .Summary}}<section><h2>About</h2><p>{{.Summary}}</p></section>{{end}}
        {{if .Skills}}
        <section>
            <h2>Skills</h2>
            {{range .Skills}}<span class="skill">{{.Name}}{{if .Percentage}} {{.Percentage}}%{{end}}</span>{{end}}
        </section>
        {{end}}
        {{if .Projects}}
        <section>
            <h2>Projects</h2>
            {{range .Projects}}
            <div class="project">
                <a href="{{.URL}}">{{.Name}}</a>
                {{if .Description}}<p>{{.Description}}</p>{{end}}
                <span class="meta">{{if .Language}}{{.Language}} &middot; {{end}}&#9733; {{.Stars}}</span>
            </div>
            {{end}}
        </section>
        {{end}}
        {{if .Experience}}
        <section>
            <h2>Experience</h2>
            {{range .Experience}}
            <div class="job">
                <h3>{{.Role}}{{if .Company}} &middot; {{.Company}}{{end}}</h3>
                <div class="duration">{{.Duration}}</div>
                <ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul>
            </div>
            {{end}}
        </section>
        {{end}}
        {{if .Education}}
        <section>
            <h2>Education</h2>
            {{range .Education}}
            <div class="job">
                <h3>{{.Degree}}</h3>
                <div class="duration">{{.Institution}}{{if .Year}} &middot; {{.Year}}{{end}}</div>
            </div>
            {{end}}
        </section>
        {{end}}
    </div>
</body>
</html>
`

const modernDevTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} | Portfolio</title>
    <style>
        body { margin: 0; font-family: 'Inter', -apple-system, sans-serif; background: #0d1117; color: #e6edf3; }
        .container { max-width: 900px; margin: 0 auto; padding: 64px 24px; }
        header { text-align: center; margin-bottom: 48px; }
        header img { width: 120px; height: 120px; border-radius: 50%; border: 3px solid #8b5cf6; }
        h1 { margin: 16px 0 4px; font-size: 32px; }
        .title { color: #8b5cf6; font-size: 18px; }
        .summary { color: #8b949e; max-width: 600px; margin: 16px auto 0; }
        h2 { font-size: 22px; color: #8b5cf6; margin-top: 48px; }
        .cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 16px; }
        .card { background: #161b22; border: 1px solid #30363d; border-radius: 12px; padding: 20px; }
        .card a { color: #e6edf3; font-weight: 600; text-decoration: none; }
        .card p { color: #8b949e; font-size: 14px; }
        .card .meta { color: #8b5cf6; font-size: 13px; }
        .bar-row { margin-bottom: 12px; }
        .bar-row .label { display: flex; justify-content: space-between; font-size: 14px; margin-bottom: 4px; }
        .bar { background: #21262d; border-radius: 4px; height: 8px; }
        .bar .fill { background: #8b5cf6; border-radius: 4px; height: 8px; }
        .job { background: #161b22; border-left: 3px solid #8b5cf6; border-radius: 0 8px 8px 0; padding: 16px 20px; margin-bottom: 16px; }
        .job h3 { margin: 0; }
        .job .duration { color: #8b949e; font-size: 13px; }
        .job ul { color: #8b949e; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            {{if .AvatarURL}}<img src="{{.AvatarURL}}" alt="{{.Name}}">{{end}}
            <h1>{{.Name}}</h1>
            {{if .Title}}<div class="title">{{.Title}}</div>{{end}}
            {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
        </header>
        {{if .Skills}}
        <h2>Skills</h2>
        {{range .Skills}}
        <div class="bar-row">
            <div class="label"><span>{{.Name}}</span>{{if .Percentage}}<span>{{.Percentage}}%</span>{{end}}</div>
            {{if .Percentage}}<div class="bar"><div class="fill" style="width: {{.Percentage}}%"></div></div>{{end}}
        </div>
        {{end}}
        {{end}}
        {{if .Projects}}
        <h2>Projects</h2>
        <div class="cards">
            {{range .Projects}}
            <div class="card">
                <a href="{{.URL}}">{{.Name}}</a>
                {{if .Description}}<p>{{.Description}}</p>{{end}}
                <div class="meta">{{if .Language}}{{.Language}} &middot; {{end}}&#9733; {{.Stars}}</div>
            </div>
            {{end}}
        </div>
        {{end}}
        {{if .Experience}}
        <h2>Experience</h2>
        {{range .Experience}}
        <div class="job">
            <h3>{{.Role}}{{if .Company}} &middot; {{.Company}}{{end}}</h3>
            <div class="duration">{{.Duration}}</div>
            <ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul>
        </div>
        {{end}}
        {{end}}
        {{if .Education}}
        <h2>Education</h2>
        {{range .Education}}
        <div class="job">
            <h3>{{.Degree}}</h3>
            <div class="duration">{{.Institution}}{{if .Year}} &middot; {{.Year}}{{end}}</div>
        </div>
        {{end}}
        {{end}}
    </div>
</body>
</html>
`

const minimalProTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} | Portfolio</title>
    <style>
        body { margin: 0; font-family: Georgia, 'Times New Roman', serif; color: #1f2328; background: #fafafa; }
        .layout { display: flex; max-width: 960px; margin: 0 auto; min-height: 100vh; background: #ffffff; }
        aside { width: 280px; background: #1f2328; color: #fafafa; padding: 48px 32px; }
        aside img { width: 140px; height: 140px; border-radius: 50%; display: block; margin: 0 auto 24px; }
        aside h1 { font-size: 24px; text-align: center; margin: 0; }
        aside .title { text-align: center; color: #9198a1; margin-top: 8px; }
        aside h2 { font-size: 14px; letter-spacing: 2px; text-transform: uppercase; color: #9198a1; margin-top: 40px; }
        aside ul { list-style: none; padding: 0; font-size: 14px; }
        aside li { margin-bottom: 6px; }
        main { flex: 1; padding: 48px 40px; }
        main h2 { font-size: 18px; letter-spacing: 2px; text-transform: uppercase; border-bottom: 2px solid #1f2328; padding-bottom: 8px; }
        .entry { margin-bottom: 24px; }
        .entry h3 { margin: 0; font-size: 16px; }
        .entry .sub { color: #59636e; font-size: 14px; }
        .entry p { color: #59636e; margin: 6px 0 0; }
        a { color: #1f2328; }
    </style>
</head>
<body>
    <div class="layout">
        <aside>
            {{if .AvatarURL}}<img src="{{.AvatarURL}}" alt="{{.Name}}">{{end}}
            <h1>{{.Name}}</h1>
            {{if .Title}}<div class="title">{{.Title}}</div>{{end}}
            {{if .Skills}}
            <h2>Skills</h2>
            <ul>{{range .Skills}}<li>{{.Name}}</li>{{end}}</ul>
            {{end}}
            <h2>Contact</h2>
            <ul>
                {{if .Contact.Email}}<li>{{.Contact.Email}}</li>{{end}}
                {{if .Contact.Website}}<li>{{.Contact.Website}}</li>{{end}}
                {{if .Contact.Linkedin}}<li>{{.Contact.Linkedin}}</li>{{end}}
                {{if .Contact.Twitter}}<li>@{{.Contact.Twitter}}</li>{{end}}
            </ul>
        </aside>
        <main>
            {{if .Summary}}<h2>Profile</h2><p>{{.Summary}}</p>{{end}}
            {{if .Experience}}
            <h2>Experience</h2>
            {{range .Experience}}
            <div class="entry">
                <h3>{{.Role}}</h3>
                <div class="sub">{{.Company}}{{if .Duration}} &middot; {{.Duration}}{{end}}</div>
                {{range .Description}}<p>{{.}}</p>{{end}}
            </div>
            {{end}}
            {{end}}
            {{if .Projects}}
            <h2>Selected Projects</h2>
            {{range .Projects}}
            <div class="entry">
                <h3><a href="{{.URL}}">{{.Name}}</a></h3>
                {{if .Description}}<p>{{.Description}}</p>{{end}}
            </div>
            {{end}}
            {{end}}
            {{if .Education}}
            <h2>Education</h2>
            {{range .Education}}
            <div class="entry">
                <h3>{{.Degree}}</h3>
                <div class="sub">{{.Institution}}{{if .Year}} &middot; {{.Year}}{{end}}</div>
            </div>
            {{end}}
            {{end}}
        </main>
    </div>
</body>
</html>
`

const resumePlusTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} | Portfolio</title>
    <style>
        body { margin: 0; font-family: 'Helvetica Neue', Arial, sans-serif; color: #2d333b; background: #eef1f4; font-size: 14px; }
        .sheet { display: flex; max-width: 1000px; margin: 24px auto; background: #ffffff; box-shadow: 0 1px 4px rgba(0,0,0,0.12); }
        aside { width: 300px; background: #f6f8fa; border-right: 1px solid #d0d7de; padding: 32px 24px; }
        aside img { width: 110px; height: 110px; border-radius: 8px; display: block; margin-bottom: 16px; }
        aside h1 { font-size: 22px; margin: 0; }
        aside .title { color: #2f6feb; font-weight: 600; margin-top: 4px; }
        aside h2 { font-size: 12px; letter-spacing: 1px; text-transform: uppercase; color: #57606a; margin: 28px 0 8px; }
        aside ul { list-style: none; padding: 0; margin: 0; }
        aside li { padding: 3px 0; }
        .skill-row { display: flex; justify-content: space-between; padding: 3px 0; }
        .skill-row .pct { color: #2f6feb; font-weight: 600; }
        main { flex: 1; padding: 32px 36px; }
        main h2 { font-size: 15px; letter-spacing: 1px; text-transform: uppercase; color: #2f6feb; border-bottom: 2px solid #2f6feb; padding-bottom: 6px; margin-top: 28px; }
        main h2:first-child { margin-top: 0; }
        .entry { margin-bottom: 18px; }
        .entry h3 { margin: 0; font-size: 15px; }
        .entry .sub { color: #57606a; font-size: 13px; }
        .entry ul { margin: 6px 0 0; padding-left: 18px; color: #424a53; }
        .entry p { margin: 4px 0 0; color: #424a53; }
        a { color: #2f6feb; text-decoration: none; }
    </style>
</head>
<body>
    <div class="sheet">
        <aside>
            {{if .AvatarURL}}<img src="{{.AvatarURL}}" alt="{{.Name}}">{{end}}
            <h1>{{.Name}}</h1>
            {{if .Title}}<div class="title">{{.Title}}</div>{{end}}
            <h2>Contact</h2>
            <ul>
                <li>@{{.Username}}</li>
                {{if .Contact.Email}}<li>{{.Contact.Email}}</li>{{end}}
                {{if .Contact.Website}}<li>{{.Contact.Website}}</li>{{end}}
                {{if .Contact.Linkedin}}<li>{{.Contact.Linkedin}}</li>{{end}}
                {{if .Contact.Twitter}}<li>@{{.Contact.Twitter}}</li>{{end}}
            </ul>
            {{if .Skills}}
            <h2>Skills</h2>
            {{range .Skills}}
            <div class="skill-row"><span>{{.Name}}</span>{{if .Percentage}}<span class="pct">{{.Percentage}}%</span>{{end}}</div>
            {{end}}
            {{end}}
            {{if .Education}}
            <h2>Education</h2>
            <ul>
                {{range .Education}}<li>{{.Degree}}{{if .Institution}}, {{.Institution}}{{end}}{{if .Year}} ({{.Year}}){{end}}</li>{{end}}
            </ul>
            {{end}}
        </aside>
        <main>
            {{if .Summary}}<h2>Summary</h2><p>{{.Summary}}</p>{{end}}
            {{if .Experience}}
            <h2>Experience</h2>
            {{range .Experience}}
            <div class="entry">
                <h3>{{.Role}}{{if .Company}} &middot; {{.Company}}{{end}}</h3>
                <div class="sub">{{.Duration}}</div>
                <ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul>
            </div>
            {{end}}
            {{end}}
            {{if .Projects}}
            <h2>Projects</h2>
            {{range .Projects}}
            <div class="entry">
                <h3><a href="{{.URL}}">{{.Name}}</a></h3>
                <div class="sub">{{if .Language}}{{.Language}} &middot; {{end}}&#9733; {{.Stars}}</div>
                {{if .Description}}<p>{{.Description}}</p>{{end}}
            </div>
            {{end}}
            {{end}}
        </main>
    </div>
</body>
</html>
`

const caseStudyTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} | Portfolio</title>
    <style>
        body { margin: 0; font-family: 'Avenir Next', 'Segoe UI', sans-serif; color: #111111; background: #ffffff; }
        .container { max-width: 1080px; margin: 0 auto; padding: 96px 32px; }
        header h1 { font-size: 48px; font-weight: 300; margin: 0; letter-spacing: -1px; }
        header .title { font-size: 20px; color: #767676; margin-top: 8px; }
        header .summary { max-width: 640px; color: #444444; line-height: 1.7; margin-top: 32px; }
        h2 { font-size: 13px; letter-spacing: 3px; text-transform: uppercase; color: #767676; margin: 96px 0 32px; }
        .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 48px; }
        .study h3 { font-size: 20px; font-weight: 500; margin: 0 0 8px; }
        .study h3 a { color: #111111; text-decoration: none; border-bottom: 1px solid #111111; }
        .study p { color: #444444; line-height: 1.6; margin: 0; }
        .study .tag { display: inline-block; color: #767676; font-size: 12px; letter-spacing: 1px; margin-top: 12px; }
        .skills { display: flex; flex-wrap: wrap; gap: 12px 32px; }
        .skills span { font-size: 15px; color: #444444; }
        .timeline .entry { display: grid; grid-template-columns: 200px 1fr; gap: 32px; margin-bottom: 48px; }
        .timeline .when { color: #767676; font-size: 14px; }
        .timeline h3 { margin: 0; font-size: 17px; font-weight: 500; }
        .timeline p { color: #444444; margin: 6px 0 0; line-height: 1.6; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{.Name}}</h1>
            {{if .Title}}<div class="title">{{.Title}}</div>{{end}}
            {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
        </header>
        {{if .Projects}}
        <h2>Selected Work</h2>
        <div class="grid">
            {{range .Projects}}
            <div class="study">
                <h3><a href="{{.URL}}">{{.Name}}</a></h3>
                {{if .Description}}<p>{{.Description}}</p>{{end}}
                <span class="tag">{{if .Language}}{{.Language}} &middot; {{end}}&#9733; {{.Stars}}</span>
            </div>
            {{end}}
        </div>
        {{end}}
        {{if .Skills}}
        <h2>Capabilities</h2>
        <div class="skills">{{range .Skills}}<span>{{.Name}}</span>{{end}}</div>
        {{end}}
        {{if .Experience}}
        <h2>Experience</h2>
        <div class="timeline">
            {{range .Experience}}
            <div class="entry">
                <div class="when">{{.Duration}}</div>
                <div>
                    <h3>{{.Role}}{{if .Company}} &middot; {{.Company}}{{end}}</h3>
                    {{range .Description}}<p>{{.}}</p>{{end}}
                </div>
            </div>
            {{end}}
        </div>
        {{end}}
        {{if .Education}}
        <h2>Education</h2>
        <div class="timeline">
            {{range .Education}}
            <div class="entry">
                <div class="when">{{.Year}}</div>
                <div><h3>{{.Degree}}</h3><p>{{.Institution}}</p></div>
            </div>
            {{end}}
        </div>
        {{end}}
    </div>
</body>
</html>
`

const creativeShowcaseTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} | Portfolio</title>
    <style>
        body { margin: 0; font-family: 'Space Grotesk', 'Segoe UI', sans-serif; background: #050505; color: #f0f0f0; }
        .container { max-width: 960px; margin: 0 auto; padding: 80px 24px; }
        header { border-bottom: 2px solid #39ff14; padding-bottom: 48px; }
        header .handle { color: #39ff14; font-size: 14px; letter-spacing: 2px; text-transform: uppercase; }
        header h1 { font-size: 56px; margin: 8px 0 0; text-transform: uppercase; letter-spacing: -2px; }
        header .title { font-size: 22px; color: #888888; margin-top: 8px; }
        header .summary { color: #bbbbbb; max-width: 620px; line-height: 1.7; margin-top: 24px; }
        h2 { color: #39ff14; font-size: 16px; letter-spacing: 3px; text-transform: uppercase; margin: 72px 0 24px; }
        .skills span { display: inline-block; border: 1px solid #39ff14; color: #39ff14; padding: 6px 14px; margin: 4px 8px 4px 0; font-size: 14px; }
        .work { border: 1px solid #222222; padding: 24px; margin-bottom: 16px; transition: border-color 0.2s; }
        .work:hover { border-color: #39ff14; }
        .work a { color: #f0f0f0; font-size: 20px; font-weight: 600; text-decoration: none; }
        .work p { color: #888888; margin: 8px 0 0; }
        .work .meta { color: #39ff14; font-size: 13px; margin-top: 12px; }
        .job { margin-bottom: 32px; }
        .job h3 { margin: 0; font-size: 18px; }
        .job .duration { color: #39ff14; font-size: 13px; letter-spacing: 1px; }
        .job ul { color: #888888; line-height: 1.6; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <div class="handle">@{{.Username}}</div>
            <h1>{{.Name}}</h1>
            {{if .Title}}<div class="title">{{.Title}}</div>{{end}}
            {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
        </header>
        {{if .Skills}}
        <h2>Stack</h2>
        <div class="skills">{{range .Skills}}<span>{{.Name}}{{if .Percentage}} / {{.Percentage}}%{{end}}</span>{{end}}</div>
        {{end}}
        {{if .Projects}}
        <h2>Work</h2>
        {{range .Projects}}
        <div class="work">
            <a href="{{.URL}}">{{.Name}}</a>
            {{if .Description}}<p>{{.Description}}</p>{{end}}
            <div class="meta">{{if .Language}}{{.Language}} &middot; {{end}}&#9733; {{.Stars}}</div>
        </div>
        {{end}}
        {{end}}
        {{if .Experience}}
        <h2>History</h2>
        {{range .Experience}}
        <div class="job">
            <h3>{{.Role}}{{if .Company}} &middot; {{.Company}}{{end}}</h3>
            <div class="duration">{{.Duration}}</div>
            <ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul>
        </div>
        {{end}}
        {{end}}
        {{if .Education}}
        <h2>Education</h2>
        {{range .Education}}
        <div class="job">
            <h3>{{.Degree}}</h3>
            <div class="duration">{{.Institution}}{{if .Year}} &middot; {{.Year}}{{end}}</div>
        </div>
        {{end}}
        {{end}}
    </div>
</body>
</html>
`
