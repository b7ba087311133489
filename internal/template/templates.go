package template

// entryTemplate renders app.js. The require and middleware blocks are
// assembled in Go so their ordering stays fixed regardless of which
// features are enabled.
const entryTemplate = `{{.Requires}}

{{if .UseEnvFile}}dotenv.config();

{{end}}const app = express();

const mode = process.env.NODE_ENV || "development";
exports.mode = mode;

{{.Middleware}}

app.get("/", (req, res) => {
  res.send("Hello World!");
});

app.use((req, res) => {
  res.status(404).json({ success: false, message: "Route not found" });
});

{{if .UseErrorHandler}}app.use(errorMiddleware);

{{end}}const PORT = process.env.PORT || 5000;
app.listen(PORT, () => {
  console.log("Server running in " + mode + " mode on port " + PORT);
});
`

// manifestTemplate renders package.json. The dependency objects arrive
// pre-rendered so the field order follows resolution order.
const manifestTemplate = `{
  "name": "{{jsonEscape .Name}}",
  "version": "1.0.0",
  "scripts": {
    "start": "NODE_ENV=production node app.js",
    "dev": "nodemon app.js"
  },
  "dependencies": {{.Dependencies}},
  "devDependencies": {{.DevDependencies}}
}
`

// errorMiddlewareContent is middlewares/error.js. The raw error is
// attached to the response body outside production.
const errorMiddlewareContent = `const errorMiddleware = (err, req, res, next) => {
  const statusCode = err.statusCode || 500;
  const message = err.message || "Internal Server Error";

  const body = { success: false, message };
  if (process.env.NODE_ENV !== "production") {
    body.error = err;
  }

  res.status(statusCode).json(body);
};

module.exports = errorMiddleware;
`

// errorClassContent is utils/errorHandler.js.
const errorClassContent = `class ErrorHandler extends Error {
  constructor(statusCode, message = "something went wrong") {
    super(message);
    this.statusCode = statusCode;
    Error.captureStackTrace(this, this.constructor);
  }
}

module.exports = ErrorHandler;
`

// envContent is the generated .env file.
const envContent = "PORT=5000\n"
