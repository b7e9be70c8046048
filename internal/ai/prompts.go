package ai

const sentimentSystemPrompt = `You are a financial sentiment analyst. Analyze the earnings call transcript and provide a comprehensive sentiment analysis. Return JSON in this exact format:
{
    "sentimentScore": number (1-10 scale),
    "positiveCount": number,
    "neutralCount": number,
    "negativeCount": number,
    "confidence": number (0-1),
    "summary": "brief summary",
    "keyHighlights": ["highlight1", "highlight2"],
    "riskFactors": ["risk1", "risk2"]
}`

const sentimentUserPromptFmt = "Analyze this earnings call transcript for %s:\n\n%s"

const transcriptSystemPromptFmt = `You are tasked with generating a realistic earnings call transcript for %s for Q%s %s.
Include:
- CEO opening remarks about quarterly performance
- CFO financial highlights (revenue, profit, margins)
- Key business developments and strategic initiatives
- Market challenges and opportunities
- Q&A session with analysts
- Forward-looking statements and guidance

Make it sound professional and realistic, with specific financial metrics and business insights relevant to the Indian market and NSE-listed companies.`

const transcriptUserPromptFmt = "Generate an earnings call transcript for %s Q%s %s earnings call."

const summarySystemPrompt = "You are a financial analyst. Provide a concise summary of the earnings call transcript, highlighting key financial metrics, strategic initiatives, and outlook."

const summaryUserPromptFmt = "Summarize this earnings call transcript in 3-4 paragraphs, focusing on the most important financial and strategic points:\n\n%s"
