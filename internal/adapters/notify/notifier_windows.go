//go:build windows

package notify

import "strings"

// commandsFor shows a balloon tip through PowerShell and Windows Forms
func commandsFor(title, body string) []command {
	quote := func(s string) string { return "'" + strings.ReplaceAll(s, "'", "''") + "'" }
	script := strings.Join([]string{
		"Add-Type -AssemblyName System.Windows.Forms",
		"$n = New-Object System.Windows.Forms.NotifyIcon",
		"$n.Icon = [System.Drawing.SystemIcons]::Information",
		"$n.Visible = $true",
		"$n.ShowBalloonTip(5000, " + quote(title) + ", " + quote(body) + ", 'Info')",
		"Start-Sleep -Seconds 6",
		"$n.Dispose()",
	}, "; ")
	return []command{
		{"powershell", []string{"-NoProfile", "-Command", script}},
	}
}
