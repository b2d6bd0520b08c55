// ABOUTME: SQLite schema for assessment persistence
// ABOUTME: Creates tables and indexes for sessions, answer logs, and reports
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Assessment sessions
CREATE TABLE IF NOT EXISTS assessments (
    id TEXT PRIMARY KEY,
    status TEXT NOT NULL DEFAULT 'not_started',
    current_phase TEXT NOT NULL DEFAULT 'SCREENING',
    pending_question_id TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    completed_at DATETIME
);

-- Ordered answer log; engine state is rebuilt by replaying these rows
CREATE TABLE IF NOT EXISTS responses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    assessment_id TEXT NOT NULL REFERENCES assessments(id) ON DELETE CASCADE,
    question_id TEXT NOT NULL,
    answer_values TEXT NOT NULL,
    answered_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Final reports, one per completed assessment
CREATE TABLE IF NOT EXISTS reports (
    assessment_id TEXT PRIMARY KEY REFERENCES assessments(id) ON DELETE CASCADE,
    report_data TEXT NOT NULL,
    generated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_responses_assessment ON responses(assessment_id);
CREATE INDEX IF NOT EXISTS idx_assessments_status ON assessments(status);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
