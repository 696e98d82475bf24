package progressw

// the last column of a windows console wraps the cursor to the next line
const columnsReserve = 1
