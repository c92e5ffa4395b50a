package assistant

const extractionPrompt = `Extract the category name and optional description from this user request: "%s"

Respond in this exact JSON format:
{"name": "category_name", "description": "optional description or empty string"}

Only return the JSON, nothing else.`

const simpleExtractionPrompt = `Extract only the category name from: '%s'. Reply with just the name, nothing else.`

const generalPrompt = `You are an AI assistant for an admin dashboard. You can help with:
- Creating categories (e.g., "create a category called Technology")
- Listing categories (e.g., "show me all categories")
- General questions about the admin panel

User message: %s

Please provide a helpful, concise response.`

const summaryPrompt = "Summarize the following article in 2-3 concise sentences:\n\n%s"
