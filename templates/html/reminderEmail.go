package templates

import (
	"fmt"
	"html"
	"strings"
)

// RenderPendingReportsEmail generates the HTML for the daily reminder listing
// the residents that still have no daily report on the given date. Names are
// HTML-escaped before rendering.
func RenderPendingReportsEmail(date string, pending []string) string {
	items := make([]string, 0, len(pending))
	for _, nome := range pending {
		items = append(items, fmt.Sprintf("<li>%s</li>", html.EscapeString(nome)))
	}

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Relatórios diários pendentes</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f7f4; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #2e7d32 0%%, #66bb6a 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #374151; line-height: 1.6; font-size: 15px; }
    .content ul { padding-left: 20px; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Relatórios diários pendentes</h1>
    </div>
    <div class="content">
      <p>Os seguintes residentes ainda não têm relatório diário em <strong>%s</strong>:</p>
      <ul>
        %s
      </ul>
      <p>Por favor, registre os relatórios antes do fim do plantão.</p>
    </div>
    <div class="footer">
      <p>&copy; Casa Verde</p>
    </div>
  </div>
</body>
</html>`, html.EscapeString(date), strings.Join(items, "\n        "))
}
