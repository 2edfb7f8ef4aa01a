package speech

// BroadcastText wraps content in the store's opening and closing lines.
func BroadcastText(content string) string {
	return "보움에서 알려드립니다. " + content + " 감사합니다."
}
