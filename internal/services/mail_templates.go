package services

const notificationHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f5efe6; color: #2b2118; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .wrapper { width: 100%; padding: 32px 16px; box-sizing: border-box; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 8px 30px rgba(43, 33, 24, 0.12); }
    .header { padding: 24px 28px; background: #7c4a1e; }
    .brand { font-weight: 700; letter-spacing: 0.5px; font-size: 20px; color: #fdf6ec; text-transform: uppercase; }
    .hero { padding: 28px; }
    h1 { margin: 0 0 12px; font-size: 22px; line-height: 1.3; }
    p { margin: 0 0 16px; line-height: 1.6; color: #4a3b2e; }
    table { width: 100%; border-collapse: collapse; margin: 8px 0 20px; }
    th { text-align: left; width: 38%; padding: 8px 10px; background: #faf4ec; color: #7c4a1e; font-weight: 600; border-bottom: 1px solid #eee3d3; }
    td { padding: 8px 10px; border-bottom: 1px solid #eee3d3; }
    .message { white-space: pre-wrap; background: #faf4ec; border-radius: 8px; padding: 14px; }
    .muted { color: #8a7763; font-size: 13px; }
    .footer { padding: 18px 28px; color: #8a7763; font-size: 12px; text-align: center; border-top: 1px solid #eee3d3; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header">
        <div class="brand">{{.AppName}}</div>
      </div>
      <div class="hero">
        <h1>{{.Title}}</h1>
        <p>{{.Intro}}</p>
        {{if .Fields}}
        <table>
          {{range .Fields}}
          <tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
          {{end}}
        </table>
        {{end}}
        {{if .Message}}
        <p class="message">{{.Message}}</p>
        {{end}}
        <p class="muted">Submitted {{.Submitted}}</p>
      </div>
      <div class="footer">
        © {{.Year}} {{.AppName}}
      </div>
    </div>
  </div>
</body>
</html>`

const notificationTextTemplate = `{{.Title}}

{{.Intro}}

{{range .Fields}}{{.Label}}: {{.Value}}
{{end}}{{if .Message}}
Message:
{{.Message}}
{{end}}
Submitted {{.Submitted}}

-- {{.AppName}} (c) {{.Year}}
`
