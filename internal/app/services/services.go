package services

// Services defined in this package:
// - RegistrationService: Registration lifecycle, payments and dashboard queries
// - AuthService: Administrator authentication and account management
// - SettingsService: Single-row contest configuration
