/*
Package asktech turns Ask-A-Tech form responses into Web Help Desk tickets.

The form writes each question as a row in a Google Sheets worksheet. ask-a-tech is intended to be
run from a cron job: each run creates a ticket for every pending row, in worksheet order, and moves
the row to an archive worksheet once the ticket has been created. A run stops at the first failure
so that a row is never archived without a ticket and no row is skipped.

ask-a-tech supports the following commands:

  - run, to create tickets for the pending rows and archive them
  - get, to download a worksheet as a TSV file
  - authorise, to authorise access to the Google Sheets spreadsheet
  - version, to display the current version
*/
package asktech
