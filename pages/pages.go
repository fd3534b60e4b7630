package pages

var Index = `
<!DOCTYPE html>
<html>
<head>
    <title>Home — Persona Solar System</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background: #0b0e1a;
            color: #e6e6e6;
        }
        code {
            background: #1a1f33;
            padding: 2px 6px;
            border-radius: 4px;
        }
    </style>
</head>
<body>
    <h1>Home</h1>
    <p>Backend for the persona solar system demo. Each planet is a chatbot
    persona orbiting a shared core of Sun traits.</p>
    <h2>Endpoints</h2>
    <ul>
        <li><code>GET /health</code> — liveness probe</li>
        <li><code>GET /api/personas</code> — the catalogue</li>
        <li><code>GET /api/personas/:id</code> — one persona</li>
        <li><code>POST /api/chat</code> — talk to a persona</li>
        <li><code>POST /api/personality/update</code> — acknowledged, not applied</li>
        <li><code>POST /api/sessions/:sessionId/navigation</code> — camera events</li>
        <li><code>GET /ws/navigation?sessionId=...</code> — stage-change stream</li>
    </ul>
</body>
</html>`
