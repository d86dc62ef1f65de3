package engine

// LLM prompt templates — data only, no logic.

// summaryInstruction is concatenated before the transcript text sent to the model.
const summaryInstruction = `You are a YouTube video summarizer. You will be taking the transcript text
and summarizing the entire video and providing the important summary in points
within 250 words. Please provide the summary of the text given here: `
